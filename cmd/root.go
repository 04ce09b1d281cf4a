package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/verticore/liftsim/app"
	"github.com/verticore/liftsim/config"
	"github.com/verticore/liftsim/infra/logger"
	"github.com/verticore/liftsim/pkg/export"
)

var (
	cfgPath  string
	jsonPath string
	csvPath  string
)

var rootCmd = &cobra.Command{
	Use:   "liftsim",
	Short: "Elevator bank simulator",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "write the report as JSON to this file")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "write the hourly breakdown as CSV to this file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	rep, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(f *os.File) error { return export.WriteJSON(f, rep) }); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}
	if csvPath != "" {
		if err := writeFile(csvPath, func(f *os.File) error { return export.WriteCSV(f, rep) }); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
