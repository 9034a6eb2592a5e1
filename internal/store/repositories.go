package store

import "github.com/MKhiriev/go-car-keeper/internal/logger"

// Repositories groups every repository backed by a single [DB].
type Repositories struct {
	UserRepository UserRepository
	CarRepository  CarRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		CarRepository:  NewCarRepository(db, log),
	}
}
