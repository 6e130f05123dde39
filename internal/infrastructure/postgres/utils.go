package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const uniqueViolationCode = "23505"

// isUniqueViolation verifica si un error de pgx es una violación de
// constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// validUUID verifica que el valor parsee como UUID. Los ids llegan crudos desde
// parámetros de ruta o query: un valor malformado debe leerse como "sin filas"
// en lugar de fallar en el codec uuid al codificar el argumento.
func validUUID(s string) bool {
	return uuid.Validate(s) == nil
}
