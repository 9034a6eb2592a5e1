package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-car-keeper/models"
)

var (
	userColumns = []string{"user_id", "username", "password_hash", "created_at"}
	carColumns  = []string{"id", "make", "model"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertCarQuery(b sq.StatementBuilderType, car models.Car) (string, []any, error) {
	return b.Insert(car.TableName()).
		Columns("make", "model").
		Values(car.Make, car.Model).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindCarByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(carColumns...).
		From(models.Car{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFindAllCarsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(carColumns...).
		From(models.Car{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildUpdateCarQuery(b sq.StatementBuilderType, car models.Car) (string, []any, error) {
	return b.Update(car.TableName()).
		Set("make", car.Make).
		Set("model", car.Model).
		Where(sq.Eq{"id": car.ID}).
		ToSql()
}

func buildDeleteCarQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Car{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
