// Package http is the loopback REST API of the recipe keeper.
//
// Routes are wired with chi in routes.go. Every request gets a trace ID and a
// request-scoped logger, is access-logged, and is recovered from panics.
// Routes other than registration, login and version require a bearer JWT
// issued by the login endpoint.
//
// Service errors are translated to status codes by statusFromError and sent
// as {"error": "..."} bodies.
package http
