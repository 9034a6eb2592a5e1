package crypto

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTCodec implements [TokenCodec] with HMAC-SHA256 signed JWTs.
//
// The sign key is copied once at construction and never mutated, so a single
// codec is safe for concurrent use.
type JWTCodec struct {
	signKey []byte
	issuer  string
	ttl     time.Duration
	leeway  time.Duration

	now func() time.Time
}

// NewJWTCodec builds a codec from the token settings in cfg.
func NewJWTCodec(cfg config.App) (*JWTCodec, error) {
	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 || cfg.TokenLeeway < 0 {
		return nil, errInvalidCodecParams
	}

	return &JWTCodec{
		signKey: []byte(cfg.TokenSignKey),
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
		leeway:  cfg.TokenLeeway,
		now:     time.Now,
	}, nil
}

// Issue implements [TokenCodec].
//
// The token includes the following standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured TTL
func (c *JWTCodec) Issue(subject string) (models.Token, error) {
	if subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", errInvalidCodecParams)
	}

	now := c.now()
	expiresAt := now.Add(c.ttl)
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Validate implements [TokenCodec].
//
// Steps, in order:
//  1. the token parses, uses HS256 and its signature verifies, and the
//     issuer and subject claims are well-formed, else [ErrTokenInvalid];
//  2. now is before exp (plus leeway), else [ErrTokenExpired];
//  3. the subject is returned.
func (c *JWTCodec) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	// claims are checked below so that signature failures always win over expiry
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Issuer != c.issuer {
		return "", fmt.Errorf("%w: unexpected issuer %q", ErrTokenInvalid, claims.Issuer)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}
	if claims.ExpiresAt == nil {
		return "", fmt.Errorf("%w: missing expiry", ErrTokenInvalid)
	}

	if !c.now().Before(claims.ExpiresAt.Add(c.leeway)) {
		return "", ErrTokenExpired
	}

	return claims.Subject, nil
}

func (c *JWTCodec) keyFunc(_ *jwt.Token) (any, error) {
	return c.signKey, nil
}
