package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/statusboard/pkg/domain/contract"
	"github.com/m-mizutani/statusboard/pkg/domain/interfaces"
)

// DefaultAddr is the address the service binds when none is given
const DefaultAddr = ":3000"

// config holds internal HTTP server configuration
type config struct {
	addr           string
	cors           CORSPolicy
	serveFrontend  bool
	reportToSentry bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithCORS sets the cross-origin policy applied to every response
func WithCORS(policy CORSPolicy) Option {
	return func(c *config) {
		c.cors = policy
	}
}

// WithFrontend enables or disables hosting of the status page
func WithFrontend(enabled bool) Option {
	return func(c *config) {
		c.serveFrontend = enabled
	}
}

// WithSentry reports handler panics to Sentry. The Sentry client must be
// initialized beforehand.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.reportToSentry = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	healthUC interfaces.HealthUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:          DefaultAddr,
		cors:          AllowAnyOrigin(),
		serveFrontend: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if healthUC == nil {
		return nil, goerr.New("health use case is required")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.reportToSentry {
		// inside Recoverer so the panic is captured before it is turned into a 500
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	router.Use(cfg.cors.Handler())
	router.Use(middleware.GetHead)

	router.Get(contract.HealthPath, NewHealthHandler(healthUC).Handle)

	if cfg.serveFrontend {
		frontend, err := newFrontendHandler()
		if err != nil {
			return nil, err
		}
		router.Get("/", frontend.ServeHTTP)
		router.Get("/index.html", frontend.ServeHTTP)
		router.Get("/script.js", frontend.ServeHTTP)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
