package main

import (
	"fmt"

	"github.com/jonathan/cv-dashboard/internal/metrics"
	"github.com/jonathan/cv-dashboard/internal/rendering"
	"github.com/jonathan/cv-dashboard/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	Long:  `Start an HTTP server that renders the dashboard page and exposes it as JSON. Spreadsheets are re-read on every request.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	layout, err := rendering.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}

	m := metrics.New()
	builder := newBuilder(cfg, m)

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Layout:    layout,
		ImageDir:  cfg.Data.ImageDir,
		Builder:   builder,
		Metrics:   m,
		RateLimit: cfg.RateLimitConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
