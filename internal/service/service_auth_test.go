package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/mock"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc: helper that builds authService with mocked collaborators.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenCodec,
) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	codec := mock.NewMockTokenCodec(ctrl)

	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil)

	svc, err := NewAuthService(repo, hasher, codec, logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), repo, hasher, codec
}

func TestNewAuthService_DummyHashError(t *testing.T) {
	ctrl := gomock.NewController(t)

	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("boom"))

	svc, err := NewAuthService(mock.NewMockUserRepository(ctrl), hasher, mock.NewMockTokenCodec(ctrl), logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, svc)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("p@ss").Return("bcrypt-hash", nil)
	repo.EXPECT().
		CreateUser(ctx, models.User{Username: "alice", PasswordHash: "bcrypt-hash"}).
		Return(models.User{UserID: 1, Username: "alice", PasswordHash: "bcrypt-hash"}, nil)

	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "empty username", credentials: models.Credentials{Password: "p"}},
		{name: "empty password", credentials: models.Credentials{Username: "alice"}},
		{name: "both empty", credentials: models.Credentials{}},
		{name: "username too long", credentials: models.Credentials{Username: strings.Repeat("a", 256), Password: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.RegisterUser(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher, _ := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "long"})
	assert.ErrorIs(t, err, crypto.ErrPasswordTooLong)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash("p@ss").Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "p@ss"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	stored := models.User{UserID: 1, Username: "alice", PasswordHash: "h"}
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Verify("p@ss", "h").Return(true)

	user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "p@ss"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice", PasswordHash: "h"}, nil)
	hasher.EXPECT().Verify("wrong", "h").Return(false)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Login_UnknownUserVerifiesDummyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Verify("p@ss", "dummy-hash").Return(false)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "p@ss"})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice", PasswordHash: "h"}, nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false).Times(2)

	_, unknownErr := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "x"})
	_, wrongErr := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	assert.Equal(t, unknownErr, wrongErr)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "p"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, codec := newTestAuthSvc(t, ctrl)

	codec.EXPECT().Issue("alice").Return(models.Token{SignedString: "t", Subject: "alice"}, nil)

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "t", token.SignedString)
}

func TestAuthService_CreateToken_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, codec := newTestAuthSvc(t, ctrl)

	codec.EXPECT().Issue("alice").Return(models.Token{}, errors.New("sign"))

	_, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		validateErr error
	}{
		{name: "valid", subject: "alice"},
		{name: "invalid", validateErr: crypto.ErrTokenInvalid},
		{name: "expired", validateErr: crypto.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, codec := newTestAuthSvc(t, ctrl)

			codec.EXPECT().Validate("tok").Return(tt.subject, tt.validateErr)

			subject, err := svc.ParseToken(context.Background(), "tok")
			if tt.validateErr != nil {
				assert.ErrorIs(t, err, tt.validateErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.subject, subject)
		})
	}
}

// ── Identify ─────────────────────────────────────────────────────────────────

func TestAuthService_Identify(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		repoErr error
		wantErr error
	}{
		{name: "found", user: models.User{UserID: 1, Username: "alice"}},
		{name: "unknown", repoErr: store.ErrUserNotFound, wantErr: ErrAuthenticationFailed},
		{name: "store failure", repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _, _ := newTestAuthSvc(t, ctrl)

			repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(tt.user, tt.repoErr)

			user, err := svc.Identify(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, user)
		})
	}
}

// ── Round trip with real crypto ──────────────────────────────────────────────

func TestAuthService_RegisterLoginValidateRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	codec, err := crypto.NewJWTCodec(testAppConfig())
	require.NoError(t, err)

	svc, err := NewAuthService(repo, crypto.NewBcryptHasher(4), codec, logger.Nop())
	require.NoError(t, err)

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			stored = u
			return u, nil
		})
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil })

	ctx := context.Background()
	_, err = svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "p@ss"})
	require.NoError(t, err)
	assert.NotEqual(t, "p@ss", stored.PasswordHash)

	user, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "p@ss"})
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	subject, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}
