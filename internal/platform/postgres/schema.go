package postgres

import _ "embed"

// Schema is the portal's DDL, embedded so deployments bootstrap the
// database without shipping a separate file. Feed it to
// Provider.InitializeSchema.
//
//go:embed schema.sql
var Schema string
