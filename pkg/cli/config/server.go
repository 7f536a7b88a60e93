package config

import (
	"github.com/urfave/cli/v3"

	controller "github.com/m-mizutani/statusboard/pkg/controller/http"
)

// Server holds server configuration
type Server struct {
	Addr           string
	AllowAnyOrigin bool
	AllowedOrigins []string
	ServeFrontend  bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       controller.DefaultAddr,
			Destination: &c.Addr,
			Sources:     cli.EnvVars("STATUSBOARD_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "cors-allow-any-origin",
			Usage:       "Allow cross-origin reads from any origin (not suitable for production)",
			Value:       true,
			Destination: &c.AllowAnyOrigin,
			Sources:     cli.EnvVars("STATUSBOARD_CORS_ALLOW_ANY_ORIGIN"),
		},
		&cli.StringSliceFlag{
			Name:        "cors-allowed-origin",
			Usage:       "Origin allowed to read responses, used when --cors-allow-any-origin=false (repeatable)",
			Destination: &c.AllowedOrigins,
			Sources:     cli.EnvVars("STATUSBOARD_CORS_ALLOWED_ORIGINS"),
		},
		&cli.BoolFlag{
			Name:        "serve-frontend",
			Usage:       "Serve the status page at /",
			Value:       true,
			Destination: &c.ServeFrontend,
			Sources:     cli.EnvVars("STATUSBOARD_SERVE_FRONTEND"),
		},
	}
}

// CORSPolicy converts the flags into the server's cross-origin policy
func (c *Server) CORSPolicy() controller.CORSPolicy {
	if c.AllowAnyOrigin {
		return controller.AllowAnyOrigin()
	}
	return controller.AllowOrigins(c.AllowedOrigins...)
}

// Options returns server options derived from the configuration
func (c *Server) Options() []controller.Option {
	return []controller.Option{
		controller.WithAddr(c.Addr),
		controller.WithCORS(c.CORSPolicy()),
		controller.WithFrontend(c.ServeFrontend),
	}
}
