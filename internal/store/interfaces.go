package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

// UserRepository persists user identities. Credentials are never updated or
// deleted through it.
type UserRepository interface {
	// CreateUser stores a new identity and returns it with the server-assigned
	// UserID. A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername yields [ErrUserNotFound] when no identity matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CarRepository persists car records.
type CarRepository interface {
	// Save stores cars in a single transaction and returns them with their
	// generated ids, in input order.
	Save(ctx context.Context, cars []models.Car) ([]models.Car, error)

	FindByID(ctx context.Context, id int64) (models.Car, error)
	FindAll(ctx context.Context) ([]models.Car, error)

	// Update overwrites make and model of the car with car.ID.
	Update(ctx context.Context, car models.Car) error

	DeleteByID(ctx context.Context, id int64) error
}
