package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/models"
)

// AuthService owns credential checks and the session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates tokenString and returns the username it was
	// issued for.
	ParseToken(ctx context.Context, tokenString string) (string, error)

	// Identify loads the identity behind an authenticated username.
	Identify(ctx context.Context, username string) (models.User, error)
}

// CarService exposes car record CRUD.
type CarService interface {
	GetAllCars(ctx context.Context) ([]models.Car, error)
	GetCarByID(ctx context.Context, id int64) (models.Car, error)
	AddCars(ctx context.Context, cars []models.Car) ([]models.Car, error)
	UpdateCar(ctx context.Context, update models.CarUpdate) (models.Car, error)
	DeleteCar(ctx context.Context, id int64) error
}
