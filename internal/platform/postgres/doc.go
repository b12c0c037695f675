// Package postgres provides the PostgreSQL implementations of the store
// interfaces, together with the connection provider and schema bootstrap.
package postgres
