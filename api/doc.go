// Package api provides the HTTP layer built on Huma and chi.
//
// The server exposes the merged episode feed plus per-platform diagnostic
// endpoints, with request logging, rate limiting and CORS applied as router
// middleware. OpenAPI documentation is generated from the registered
// operations and served at /openapi.json and /docs.
package api
