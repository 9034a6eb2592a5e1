package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/mock"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*testing.T, *mock.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"p@ss"}`,
			setup: func(_ *testing.T, m *mock.MockAuthService) {
				m.EXPECT().RegisterUser(gomock.Any(), models.Credentials{Username: "alice", Password: "p@ss"}).
					Return(models.User{UserID: 1, Username: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "User registered successfully",
		},
		{
			name:       "invalid json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty fields",
			body: `{"username":"","password":""}`,
			setup: func(_ *testing.T, m *mock.MockAuthService) {
				m.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too long",
			body: `{"username":"alice","password":"x"}`,
			setup: func(_ *testing.T, m *mock.MockAuthService) {
				m.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, crypto.ErrPasswordTooLong)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"p@ss"}`,
			setup: func(_ *testing.T, m *mock.MockAuthService) {
				m.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "store failure",
			body: `{"username":"alice","password":"p@ss"}`,
			setup: func(_ *testing.T, m *mock.MockAuthService) {
				m.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc, _ := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(t, authSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.register(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)
	alice := models.User{UserID: 1, Username: "alice"}

	authSvc.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "p@ss"}).Return(alice, nil)
	authSvc.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"p@ss"}`))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "signed.jwt.token", rr.Body.String())
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{name: "bad credentials", loginErr: service.ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized},
		{name: "empty fields", loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "store failure", loginErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc, _ := newTestHandler(t)
			authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.loginErr)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"x"}`))
			rr := httptest.NewRecorder()
			h.login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	h, authSvc, _ := newTestHandler(t)

	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Username: "alice"}, nil)
	authSvc.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"x"}`))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`nope`))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHello(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.hello(rr, httptest.NewRequest(http.MethodGet, "/auth/hello", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello, World!", rr.Body.String())
}
