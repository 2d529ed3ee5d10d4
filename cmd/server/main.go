package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"llm-advisor/internal/config"
	"llm-advisor/internal/interfaces/httpserver"
)

// Application bundles the long-running components of the advisor API.
type Application struct {
	Cfg        *config.Config
	Log        zerolog.Logger
	HTTPServer *httpserver.HttpServer
	Init       *DataInitializer
}

// Start runs the HTTP server and the metrics listener until the context is
// cancelled or either of them fails.
func (application *Application) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return application.HTTPServer.Run(ctx)
	})
	eg.Go(func() error {
		return application.runMetricsServer(ctx)
	})

	return eg.Wait()
}

func (application *Application) runMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    application.Cfg.MetricsAddr(),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		application.Log.Info().Str("addr", application.Cfg.MetricsAddr()).Msg("metrics server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.Cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		fatalLog := zerolog.New(os.Stderr)
		fatalLog.Fatal().Err(err).Msg("create application")
	}
	log := application.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Init.Install(ctx); err != nil {
		log.Fatal().Err(err).Msg("install data")
	}

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application terminated")
	}
	log.Info().Msg("shutdown complete")
}
