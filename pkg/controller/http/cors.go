package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSPolicy decides which browser origins may read responses
type CORSPolicy struct {
	// AllowAnyOrigin permits every origin. Convenient for local development
	// but not suitable for production deployments.
	AllowAnyOrigin bool
	// AllowedOrigins is consulted only when AllowAnyOrigin is false. An
	// empty list denies all cross-origin reads.
	AllowedOrigins []string
}

// AllowAnyOrigin returns the permissive default policy
func AllowAnyOrigin() CORSPolicy {
	return CORSPolicy{AllowAnyOrigin: true}
}

// AllowOrigins returns a policy restricted to the listed origins
func AllowOrigins(origins ...string) CORSPolicy {
	return CORSPolicy{AllowedOrigins: origins}
}

// Handler returns the middleware enforcing the policy
func (p CORSPolicy) Handler() func(next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: p.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}

	switch {
	case p.AllowAnyOrigin:
		opts.AllowedOrigins = []string{"*"}
	case len(p.AllowedOrigins) == 0:
		// cors treats an empty list as "all origins"
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
	}

	return cors.Handler(opts)
}
