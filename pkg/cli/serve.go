package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/statusboard/pkg/cli/config"
	controller "github.com/m-mizutani/statusboard/pkg/controller/http"
	"github.com/m-mizutani/statusboard/pkg/usecase"
	"github.com/m-mizutani/statusboard/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(sentryCfg *config.Sentry) *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := append(serverCfg.Options(), controller.WithSentry(sentryCfg.Enabled()))
			return serve(ctx, &serverCfg, opts...)
		},
	}
}

// serve binds the listener, runs the server until ctx is done and then shuts
// it down gracefully
func serve(ctx context.Context, serverCfg *config.Server, opts ...controller.Option) error {
	logger := ctxlog.From(ctx)

	if serverCfg.AllowAnyOrigin {
		logger.Warn("CORS allows any origin, restrict it with --cors-allow-any-origin=false for production")
	}

	server, err := controller.NewServer(ctx, usecase.NewHealth(), opts...)
	if err != nil {
		return goerr.Wrap(err, "failed to create HTTP server")
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return goerr.Wrap(err, "failed to listen", goerr.V("addr", server.Addr))
	}

	port := 0
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	logger.Info("Backend running",
		slog.String("addr", ln.Addr().String()),
		slog.Int("port", port),
	)

	done := async.Dispatch(ctx, func(ctx context.Context) error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "HTTP server stopped")
		}
		return nil
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down...", slog.Any("cause", context.Cause(ctx)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}
	if err := <-done; err != nil {
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}
