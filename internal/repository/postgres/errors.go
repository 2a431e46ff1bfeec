package postgres

import (
	"errors"
	"net"
	"syscall"

	"go-candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const msgDBUnreachable = "No se pudo conectar con la base de datos. Por favor, asegúrese de que el servidor de base de datos esté en ejecución."

// translateError maps a store failure to an explicit error kind so callers
// never inspect driver codes or message substrings. Unique-constraint
// violations stay entity-specific and are handled by each repository.
func translateError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return apperror.Unavailable(msgDBUnreachable)
	}
	return apperror.Persistence(err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
