package service

import (
	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	CarService  CarService
}

func NewServices(repositories *store.Repositories, hasher crypto.PasswordHasher, codec crypto.TokenCodec, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(repositories.UserRepository, hasher, codec, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: authService,
		CarService:  NewCarService(repositories.CarRepository, logger),
	}, nil
}
