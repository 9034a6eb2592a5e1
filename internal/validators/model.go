package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a credentials pair.
	FieldPassword = "password"

	// FieldCarID targets the identifier of a car or a car update.
	FieldCarID = "car_id"
)

// maxUsernameLength matches the width of the users.username column.
const maxUsernameLength = 255

// ModelValidator implements Validator for models.Credentials, models.Car and
// models.CarUpdate. Value and pointer forms are both accepted.
type ModelValidator struct {
}

func NewModelValidator() Validator {
	return &ModelValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked per type; unknown types yield ErrUnsupportedType.
func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Car:
		return v.validateCar(value, fields...)
	case *models.Car:
		return v.validateCar(*value, fields...)

	case models.CarUpdate:
		return v.validateCarUpdate(value, fields...)
	case *models.CarUpdate:
		return v.validateCarUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks Username and Password by default.
func (v *ModelValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validation.Validate(credentials.Username, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyUsername, err)
			}
			if err := validation.Validate(credentials.Username, validation.RuneLength(0, maxUsernameLength)); err != nil {
				return fmt.Errorf("%w: %w", ErrUsernameTooLong, err)
			}
		case FieldPassword:
			if err := validation.Validate(credentials.Password, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyPassword, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCar checks only the ID by default. Make and model are free text.
func (v *ModelValidator) validateCar(car models.Car, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCarID}
	}

	for _, f := range fields {
		switch f {
		case FieldCarID:
			if err := validateCarID(car.ID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ModelValidator) validateCarUpdate(update models.CarUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCarID}
	}

	for _, f := range fields {
		switch f {
		case FieldCarID:
			if err := validateCarID(update.ID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCarID(id int64) error {
	if err := validation.Validate(id, validation.Required, validation.Min(int64(1))); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCarID, err)
	}
	return nil
}
