// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrTokenInvalid is returned for malformed, unsigned, tampered or
	// foreign-issuer tokens.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for tokens with a valid signature whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrPasswordTooLong is returned by [BcryptHasher.Hash] for passwords
	// longer than bcrypt's 72-byte input limit.
	ErrPasswordTooLong = errors.New("password is too long")

	errInvalidCodecParams = errors.New("invalid params for JWT codec")
)
