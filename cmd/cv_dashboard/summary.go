package main

import (
	"os"
	"time"

	"github.com/jonathan/cv-dashboard/internal/observability"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a summary of the dashboard data",
	Long:  "Loads every data source once and prints the profile, timeline, skills and the status of each source.",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	builder := newBuilder(cfg, nil)

	start := time.Now()
	d := builder.Build("summary")

	p := observability.NewPrinter(os.Stdout)
	p.PrintDashboard(d)
	if cfg.Verbose {
		p.PrintRenderTime(time.Since(start))
	}
	return nil
}
