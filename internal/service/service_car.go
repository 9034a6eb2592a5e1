package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/validators"
	"github.com/MKhiriev/go-car-keeper/models"
)

type carService struct {
	carRepository store.CarRepository
	validator     validators.Validator

	logger *logger.Logger
}

func NewCarService(carRepository store.CarRepository, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		validator:     validators.NewModelValidator(),
		logger:        logger,
	}
}

func (c *carService) GetAllCars(ctx context.Context) ([]models.Car, error) {
	cars, err := c.carRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting all cars: %w", err)
	}

	return cars, nil
}

func (c *carService) GetCarByID(ctx context.Context, id int64) (models.Car, error) {
	if err := c.validator.Validate(ctx, models.Car{ID: id}, validators.FieldCarID); err != nil {
		return models.Car{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	car, err := c.carRepository.FindByID(ctx, id)
	if err != nil {
		return models.Car{}, fmt.Errorf("error getting car %d: %w", id, err)
	}

	return car, nil
}

// AddCars stores cars and returns them with their generated ids. Client
// supplied ids are ignored. An empty batch is a no-op.
func (c *carService) AddCars(ctx context.Context, cars []models.Car) ([]models.Car, error) {
	if len(cars) == 0 {
		return []models.Car{}, nil
	}

	saved, err := c.carRepository.Save(ctx, cars)
	if err != nil {
		return nil, fmt.Errorf("error saving %d cars: %w", len(cars), err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(saved)).Msg("cars saved")
	return saved, nil
}

// UpdateCar overwrites the fields set in update and returns the resulting
// record. The car id never changes.
func (c *carService) UpdateCar(ctx context.Context, update models.CarUpdate) (models.Car, error) {
	if err := c.validator.Validate(ctx, update, validators.FieldCarID); err != nil {
		return models.Car{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	car, err := c.GetCarByID(ctx, update.ID)
	if err != nil {
		return models.Car{}, err
	}

	if update.IsEmpty() {
		return car, nil
	}

	updated := update.Apply(car)
	if err = c.carRepository.Update(ctx, updated); err != nil {
		return models.Car{}, fmt.Errorf("error updating car %d: %w", update.ID, err)
	}

	return updated, nil
}

func (c *carService) DeleteCar(ctx context.Context, id int64) error {
	if err := c.validator.Validate(ctx, models.Car{ID: id}, validators.FieldCarID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := c.carRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting car %d: %w", id, err)
	}

	logger.FromContext(ctx).Debug().Int64("car_id", id).Msg("car deleted")
	return nil
}
