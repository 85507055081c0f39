// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces using the pgx stdlib driver.
package postgres
