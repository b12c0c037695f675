// Package mocks provides hand-written in-memory fakes for the store
// interfaces. Each mock exposes a function field per method; when a field
// is nil the mock falls back to its default response values. The richer
// agency and property mocks also track calls for verification.
package mocks
