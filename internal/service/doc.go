// Package service contains the portal's application-level use cases. It
// composes the repositories defined in internal/store behind a single
// PortalService facade, adding input validation before writes and the
// in-memory analytics (time on market, regional price trends, filtered
// active listings) that are not expressed as single store queries.
//
// The facade depends only on domain entities and store interfaces, never on
// a specific storage implementation, so tests substitute in-memory fakes.
// The one place it touches the database handle directly is the transactional
// read-modify-write in MarkPropertySold.
package service
