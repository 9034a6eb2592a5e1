// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-car-keeper HTTP API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// its resty-based implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

// ServerAdapter talks to a go-car-keeper server. Implementations keep the
// bearer token obtained by Login and attach it to every other request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates a new user. It does not log the user in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Hello calls the authenticated greeting endpoint.
	Hello(ctx context.Context) (string, error)

	// Home calls the authenticated landing endpoint.
	Home(ctx context.Context) (string, error)

	// GetAllCars lists every car. An empty store yields an empty slice.
	GetAllCars(ctx context.Context) ([]models.Car, error)

	// GetCarByID fetches a single car. Returns [ErrNotFound] (wrapped) if
	// there is no such car.
	GetCarByID(ctx context.Context, id int64) (models.Car, error)

	// AddCars stores cars and returns them with their server-generated ids.
	AddCars(ctx context.Context, cars []models.Car) ([]models.Car, error)

	// UpdateCar applies a partial update to the car identified by update.ID.
	UpdateCar(ctx context.Context, update models.CarUpdate) (models.Car, error)

	// DeleteCar removes a car. Returns [ErrNotFound] (wrapped) if there is
	// no such car.
	DeleteCar(ctx context.Context, id int64) error
}
