package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/models"
)

// carRepository is the SQL implementation of [CarRepository] over the "cars"
// table.
type carRepository struct {
	*DB
	logger *logger.Logger
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts every car inside one transaction. Either all cars are stored
// or none is.
func (c *carRepository) Save(ctx context.Context, cars []models.Car) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.Save").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := make([]models.Car, 0, len(cars))
	for i, car := range cars {
		query, args, buildErr := buildInsertCarQuery(c.builder, car)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "*carRepository.Save").Int("index", i).Msg("failed to build query")
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&car.ID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*carRepository.Save").
				Int("index", i).
				Stringer("class", c.errorClassificator.Classify(scanErr)).
				Msg("failed to insert car")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}

		saved = append(saved, car)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*carRepository.Save").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// FindByID returns [ErrCarNotFound] when no car has the given id.
func (c *carRepository) FindByID(ctx context.Context, id int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCarByIDQuery(c.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindByID").Msg("failed to build query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var car models.Car
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&car.ID, &car.Make, &car.Model)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, ErrCarNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindByID").Int64("car_id", id).Msg("failed to find car")
		return models.Car{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return car, nil
}

// FindAll returns every car ordered by id. The result is empty, not nil,
// when the table has no rows.
func (c *carRepository) FindAll(ctx context.Context) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllCarsQuery(c.builder)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindAll").Msg("failed to execute query for getting all cars")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var car models.Car
		if scanErr := rows.Scan(&car.ID, &car.Make, &car.Model); scanErr != nil {
			log.Err(scanErr).Str("func", "*carRepository.FindAll").Msg("failed to scan car row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cars = append(cars, car)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*carRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cars, nil
}

// Update returns [ErrCarNotFound] when no row has car.ID.
func (c *carRepository) Update(ctx context.Context, car models.Car) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCarQuery(c.builder, car)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.Update").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.execAffectingOne(ctx, "*carRepository.Update", car.ID, query, args)
}

// DeleteByID returns [ErrCarNotFound] when no row has the given id.
func (c *carRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCarQuery(c.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteByID").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.execAffectingOne(ctx, "*carRepository.DeleteByID", id, query, args)
}

// execAffectingOne runs a DML statement that targets a single car and maps
// zero affected rows to [ErrCarNotFound].
func (c *carRepository) execAffectingOne(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("car_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("car_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}
