package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/cv-dashboard/internal/observability"
	"github.com/jonathan/cv-dashboard/internal/schemas"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the dashboard once and write it as JSON",
	Long:  "Loads every data source once, assembles the dashboard and writes it to a JSON file. Unavailable sources are recorded with their status and notice.",
	RunE:  runExport,
}

var (
	exportOutput   string
	exportValidate bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output JSON file (required)")
	exportCmd.Flags().BoolVar(&exportValidate, "validate", false, "Validate the output against the dashboard schema")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	builder := newBuilder(cfg, nil)

	start := time.Now()
	d := builder.Build("json")
	elapsed := time.Since(start)

	jsonBytes, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(exportOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write dashboard to output file: %w", err)
	}

	if exportValidate {
		if err := schemas.ValidateDashboard(jsonBytes); err != nil {
			return fmt.Errorf("exported dashboard does not validate: %w", err)
		}
	}

	if cfg.Verbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintSources(d)
		p.PrintRenderTime(elapsed)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Dashboard written to %s\n", exportOutput)
	return nil
}
