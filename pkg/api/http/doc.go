// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Book CRUD under /api/v1/books
//   - Liveness (/health) and readiness (/ready) probes
//   - Prometheus metrics (/metrics)
//
// Every handler except /metrics runs inside the request-tracking
// middleware, which assigns a correlation id, counts the request, observes
// its latency and writes one structured log line. Every response carries
// the X-Request-ID header.
package http
