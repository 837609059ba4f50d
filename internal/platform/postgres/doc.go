// Package postgres provides the PostgreSQL flavour of the SQL key-value store.
// It opens the connection through the pgx stdlib driver, applies the embedded
// schema, and maps PostgreSQL error codes onto the store error vocabulary.
package postgres
