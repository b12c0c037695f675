// Package store defines the persistence interfaces and shared error
// contracts for the property portal's data-access layer.
package store
