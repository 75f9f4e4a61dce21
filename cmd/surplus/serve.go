package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/biblemarriages/surplus/internal/api"
	"github.com/biblemarriages/surplus/internal/config"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		Long: `Serve the calculator over HTTP for a browser front end.

Endpoints live under /api: brackets, options, reference, templates,
calculate, compare, break-even.

Examples:
  surplus serve --addr :8080
  surplus serve --cors-origin https://example.org --census data/census.json`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable; default local dev servers)")
	cmd.Flags().Bool("quiet", false, "Disable the per-request log")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	census, religious, err := config.NewInputParser().LoadReferenceData(referencePaths(cmd, nil))
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	handler := api.NewHandler(census, religious)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		handler.Engine.SetLogger(zerologAdapter{log: logger})
		handler.Engine.Debug = true
	}

	origins, _ := cmd.Flags().GetStringSlice("cors-origin")
	quiet, _ := cmd.Flags().GetBool("quiet")
	router := api.NewRouter(handler, api.Options{
		AllowedOrigins:    origins,
		Logger:            &logger,
		DisableRequestLog: quiet,
	})

	addr, _ := cmd.Flags().GetString("addr")
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", addr).
			Int("census_year", census.Year).
			Str("religious_source", religious.Source).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
