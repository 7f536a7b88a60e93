package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/statusboard/pkg/cli"
)

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"statusboard", "--log-level", "loud", "probe"})
	gt.Error(t, err)
}

func TestRun_ProbeUnreachable(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"statusboard", "--log-level", "error",
		"probe", "--url", "http://127.0.0.1:1", "--timeout", "500ms",
	})
	gt.Error(t, err)
}
