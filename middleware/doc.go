// Package middleware provides the default cross-cutting HTTP middleware for
// servekit services: permissive CORS, per-request trace IDs, and request
// logging.
//
// Attach wires all three around a handler in one call; the individual
// constructors are exported for services that need a different composition.
package middleware
