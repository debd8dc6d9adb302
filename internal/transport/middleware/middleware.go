// Package middleware provides the HTTP middleware mounted in front of
// the pairlog REST routes: request id minting, requester extraction,
// request logging, panic recovery and CORS.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
