// Package main provides the CLI entry point for scorelens.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/scorelens/internal/config"
	"github.com/ukaji3/scorelens/internal/logging"
	"github.com/ukaji3/scorelens/internal/web"
	"github.com/ukaji3/scorelens/pkg/scorelens"
	"github.com/ukaji3/scorelens/pkg/scorelens/chart"
	"github.com/ukaji3/scorelens/pkg/scorelens/models"
)

var (
	column          string
	chartPath       string
	pretty          bool
	updateOutput    string
	demoOutput      string
	skipHeaderCheck bool
	demoSeed        int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scorelens",
		Short: "Analyze score spreadsheets and export format-preserving updates",
		Long: `scorelens loads a score spreadsheet, summarizes the distribution of a
numeric column, and writes edited values back into the original workbook
without disturbing its formatting.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Summarize the score distribution of a column",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&column, "column", "c", "", "Column to analyze (default: last numeric column)")
	analyzeCmd.Flags().StringVar(&chartPath, "chart", "", "Write the distribution chart PNG to this path")
	analyzeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	updateCmd := &cobra.Command{
		Use:   "update [original.xlsx] [edited.xlsx]",
		Short: "Write edited values into the original workbook, keeping its formatting",
		Args:  cobra.ExactArgs(2),
		RunE:  runUpdate,
	}
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "", "Output file path (default: <original>_updated.xlsx)")
	updateCmd.Flags().BoolVar(&skipHeaderCheck, "skip-header-check", false, "Skip validating that column headers match the original sheet")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a demo score workbook",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "demo.xlsx", "Output file path")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", time.Now().UnixNano(), "Random seed for the generated scores")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the interactive analysis web server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	rootCmd.AddCommand(analyzeCmd, updateCmd, demoCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// analyzeReport is the JSON output of the analyze command.
type analyzeReport struct {
	Columns []models.ColumnInfo `json:"columns"`
	Summary models.Summary      `json:"summary"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	t, err := scorelens.LoadFile(args[0])
	if err != nil {
		return err
	}

	target := column
	if target == "" {
		target, err = scorelens.DefaultColumn(t)
		if err != nil {
			return err
		}
	}

	sum, xs, err := scorelens.Summarize(t, target)
	if err != nil {
		return err
	}

	if chartPath != "" {
		png, err := chart.Render(sum, xs, chart.DefaultTheme())
		if err != nil {
			return fmt.Errorf("chart rendering failed: %w", err)
		}
		if err := os.WriteFile(chartPath, png, 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}

	return printJSON(analyzeReport{Columns: scorelens.Classify(t), Summary: sum})
}

func runUpdate(cmd *cobra.Command, args []string) error {
	original, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	edited, err := scorelens.LoadFile(args[1])
	if err != nil {
		return err
	}

	opts := scorelens.DefaultUpdateOptions()
	opts.ValidateHeader = !skipHeaderCheck
	out, err := scorelens.Update(original, edited, opts)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	dest := updateOutput
	if dest == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		dest = base + "_updated.xlsx"
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println(dest)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	t := scorelens.Demo(demoSeed)
	out, err := scorelens.ExportPlain(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(demoOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println(demoOutput)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	server := web.NewServer(cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	return server.Start()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
