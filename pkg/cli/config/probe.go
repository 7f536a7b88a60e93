package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// DefaultProbeURL points at a service running with default settings
const DefaultProbeURL = "http://localhost:3000"

// Probe holds health probe configuration
type Probe struct {
	URL     string
	Timeout time.Duration
}

// Flags returns CLI flags for probe configuration
func (c *Probe) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Base URL of the service to check",
			Value:       DefaultProbeURL,
			Destination: &c.URL,
			Sources:     cli.EnvVars("STATUSBOARD_PROBE_URL"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Request timeout, 0 waits forever",
			Value:       5 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("STATUSBOARD_PROBE_TIMEOUT"),
		},
	}
}
