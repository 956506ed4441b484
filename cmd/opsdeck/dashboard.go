package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opsdeck/opsdeck/internal/config"
	"github.com/opsdeck/opsdeck/internal/logger"
	"github.com/opsdeck/opsdeck/internal/tui/dashboard"
)

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard to monitor and manage the service fleet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	return cmd
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard requires an interactive terminal")
	}

	log, err := newLogger(flags)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Error(err, "configuration load failed")
		return err
	}

	log.WithFields(map[string]any{"theme": cfg.Theme, "panels": len(cfg.Panels)}).
		Info("launching dashboard")

	m := dashboard.NewModel(cfg, demoSource(), log)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	log.Info("dashboard closed")
	return nil
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: os.Stderr})
}

// loadConfig reads the configured file, falling back to built-in defaults
// when no path is given.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.ParseConfig(flags.configPath)
	}

	cfg := &config.Config{Version: "1.0"}
	cfg.ApplyDefaults()
	return cfg, nil
}

// demoSource stands in for a fleet API until one is wired up.
func demoSource() dashboard.DataSource {
	now := time.Now()
	return dashboard.StaticSource{Data: dashboard.Snapshot{
		Services: []dashboard.Service{
			{ID: "svc-api", Name: "api-gateway", Status: "active", Owner: "Dana Whitman", OwnerEmail: "dana@example.com", Region: "us-east", LastDeploy: now.Add(-3 * time.Hour)},
			{ID: "svc-auth", Name: "auth-service", Status: "active", Owner: "Ravi Patel", OwnerEmail: "ravi@example.com", Region: "us-east", LastDeploy: now.Add(-26 * time.Hour)},
			{ID: "svc-worker", Name: "batch-worker", Status: "error", Owner: "Mei Lin", OwnerEmail: "mei@example.com", Region: "eu-west", LastDeploy: now.Add(-15 * time.Minute)},
			{ID: "svc-cache", Name: "edge-cache", Status: "pending", Owner: "Dana Whitman", OwnerEmail: "dana@example.com", Region: "ap-south"},
			{ID: "svc-billing", Name: "billing", Status: "in-progress", Owner: "Sam Ortiz", OwnerEmail: "sam@example.com", Region: "us-west", LastDeploy: now.Add(-2 * 24 * time.Hour)},
		},
		Deploys:   7,
		Incidents: 1,
		TakenAt:   now,
	}}
}
