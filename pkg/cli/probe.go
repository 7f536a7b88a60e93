package cli

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/statusboard/pkg/cli/config"
	"github.com/m-mizutani/statusboard/pkg/domain/model"
	"github.com/m-mizutani/statusboard/pkg/infra/health"
	"github.com/m-mizutani/statusboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdProbe() *cli.Command {
	var probeCfg config.Probe

	return &cli.Command{
		Name:    "probe",
		Aliases: []string{"p"},
		Usage:   "Check the service once and print its status",
		Flags:   probeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return probe(ctx, c.Root().Writer, &probeCfg)
		},
	}
}

// probe performs a single health check and writes the status, green on
// success and red "Error" on failure
func probe(ctx context.Context, w io.Writer, probeCfg *config.Probe) error {
	client, err := health.NewClient(ctx, probeCfg.URL, health.WithTimeout(probeCfg.Timeout))
	if err != nil {
		return goerr.Wrap(err, "failed to create health client")
	}

	display, checkErr := usecase.NewDisplay(client).Render(ctx)
	if err := printDisplay(w, display); err != nil {
		return goerr.Wrap(err, "failed to print status")
	}

	if checkErr != nil {
		ctxlog.From(ctx).Debug("Health check failed", "error", checkErr)
		return goerr.Wrap(checkErr, "backend is not healthy", goerr.V("url", probeCfg.URL))
	}
	return nil
}

func printDisplay(w io.Writer, display model.StatusDisplay) error {
	attr := color.FgGreen
	if !display.IsSuccess() {
		attr = color.FgRed
	}
	_, err := color.New(attr).Fprintln(w, display.Text)
	return err
}
