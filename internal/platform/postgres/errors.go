package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/visionfocus/focushours/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// diskFullCode is raised when the server runs out of disk space
	diskFullCode = "53100"

	// outOfMemoryCode is raised when the server cannot allocate memory
	outOfMemoryCode = "53200"

	// tooManyConnectionsCode is raised when the connection limit is reached
	tooManyConnectionsCode = "53300"

	// connectionExceptionClass prefixes every connection-level error code
	connectionExceptionClass = "08"

	// operatorInterventionClass covers admin shutdown and crash recovery
	operatorInterventionClass = "57P"
)

// MapError maps a database error onto the store errors, wrapping the original
// so the driver detail stays available for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", store.ErrClosed, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if IsUnavailable(err) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return err
}

// IsUnavailable reports whether err is a PostgreSQL error that means the
// server cannot accept writes right now.
func IsUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case diskFullCode, outOfMemoryCode, tooManyConnectionsCode:
		return true
	}
	return strings.HasPrefix(pgErr.Code, connectionExceptionClass) ||
		strings.HasPrefix(pgErr.Code, operatorInterventionClass)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
