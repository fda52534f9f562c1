// Package cli contains the potholectl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/app"
	"github.com/shenikar/pothole_reporting_system/internal/config"
	"github.com/shenikar/pothole_reporting_system/internal/service"
	"github.com/shenikar/pothole_reporting_system/pkg/logger"
	"github.com/spf13/cobra"
)

// Version is the current version of potholectl
var Version = "0.1.0"

// globalOptions holds persistent flags shared by all commands
type globalOptions struct {
	fixtures string
	seed     uint64
	logLevel string
	format   string
	now      func() time.Time
}

// NewRootCmd builds the command tree writing to out and errOut
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{now: time.Now}

	root := &cobra.Command{
		Use:   "potholectl",
		Short: "Operator CLI for the pothole reporting system",
		Long: `potholectl runs the pothole analysis and dashboard queries locally.

It loads the reports dataset (embedded by default, or a YAML file passed with
--fixtures), generates reports for local photos or videos and prints dashboard
statistics. Nothing is persisted.

Examples:
  potholectl analyze ./street.jpg --address "5th Avenue"
  potholectl reports list --severity 4
  potholectl reports stats --format table
  potholectl reports export --out reports.geojson
  potholectl severity`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.fixtures, "fixtures", "", "Path to YAML reports dataset (default: embedded dataset)")
	pf.Uint64Var(&opts.seed, "seed", 0, "Random seed for analysis, 0 means time-seeded")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	pf.StringVarP(&opts.format, "format", "o", string(FormatYAML), "Output format (yaml|json|table)")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newReportsCmd(opts),
		newSeverityCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads env configuration and applies explicitly set flags on top
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("fixtures") {
		cfg.FixturesPath = o.fixtures
	}
	if flags.Changed("seed") {
		cfg.RandomSeed = o.seed
	}
	return cfg, nil
}

func (o *globalOptions) newService(cmd *cobra.Command, cfg *config.Config) (service.ReportService, error) {
	log := logger.NewWithOutput(o.logLevel, "text", cmd.ErrOrStderr())
	return app.NewReportService(cfg, log, o.now())
}

func (o *globalOptions) outputFormat() (Format, error) {
	return ParseFormat(o.format)
}
