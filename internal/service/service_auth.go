package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/validators"
	"github.com/MKhiriev/go-car-keeper/models"
)

// dummyPassword is hashed once at startup. Logins for unknown usernames are
// verified against its hash so both failure paths cost one bcrypt comparison.
const dummyPassword = "go-car-keeper-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token lifecycle
// using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher digests passwords at registration and checks them at login.
	hasher crypto.PasswordHasher

	// tokenCodec issues and validates session tokens.
	tokenCodec crypto.TokenCodec

	// validator rejects empty or oversized credentials before any lookup.
	validator validators.Validator

	// dummyHash is the digest of dummyPassword.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenCodec crypto.TokenCodec, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenCodec:     tokenCodec,
		validator:      validators.NewModelValidator(),
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty or the
//     username is too long;
//   - crypto.ErrPasswordTooLong if the password exceeds bcrypt's limit;
//   - a wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown usernames and wrong passwords both yield ErrAuthenticationFailed.
// Other errors are:
//   - ErrInvalidDataProvided if Username or Password is empty;
//   - a wrapped storage error if the repository lookup itself fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(credentials.Password, a.dummyHash)
		log.Info().Str("username", credentials.Username).Msg("login failed")
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, foundUser.PasswordHash) {
		log.Info().Str("username", credentials.Username).Msg("login failed")
		return models.User{}, ErrAuthenticationFailed
	}

	return foundUser, nil
}

// CreateToken issues a signed token whose subject is the user's username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokenCodec.Issue(user.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString and returns its subject. Failures wrap
// crypto.ErrTokenInvalid or crypto.ErrTokenExpired.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	subject, err := a.tokenCodec.Validate(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return "", fmt.Errorf("token rejected: %w", err)
	}

	return subject, nil
}

// Identify loads the user for a validated token subject. A subject whose user
// no longer exists yields ErrAuthenticationFailed.
func (a *authService) Identify(ctx context.Context, username string) (models.User, error) {
	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("identity lookup failed")
		return models.User{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return user, nil
}
