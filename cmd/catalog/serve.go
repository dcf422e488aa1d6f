package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-catalog/internal/http/chi"
	"github.com/marcelsud/library-catalog/metrics"
	"github.com/spf13/cobra"
)

const TIMEOUT = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Serve the catalog as a JSON API on PORT with Prometheus metrics on /metrics.
The catalog is saved after a graceful shutdown (SIGINT, SIGTERM).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	exporter, err := metrics.NewOTelExporter(metrics.NewCatalogCollector(a.svc))
	if err != nil {
		return fmt.Errorf("creating metrics exporter: %w", err)
	}
	defer exporter.Shutdown(context.Background())

	r := chi.Handlers(ctx, a.svc, exporter.ServeHTTP(), httplog.Options{
		JSON:     a.cfg.LogJSON,
		LogLevel: logLevel(a.cfg),
	})
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + a.cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	a.logger.Info().Str("port", a.cfg.Port).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-errShutdown; err != nil {
		return err
	}
	a.logger.Info().Msg("server stopped")
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	switch err := server.Shutdown(ctxTimeout); err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing server close after %s", TIMEOUT)
	default:
		errShutdown <- fmt.Errorf("forcing server close: %w", err)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
