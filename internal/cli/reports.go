package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shenikar/pothole_reporting_system/internal/export"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/pkg/currency"
	"github.com/spf13/cobra"
)

// statsView adds display values to the dashboard stats
type statsView struct {
	models.DashboardStats   `yaml:",inline"`
	TotalEstimatedCostLabel string `json:"total_estimated_cost_label" yaml:"total_estimated_cost_label"`
}

func newReportsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Query the reports dataset",
	}
	cmd.AddCommand(
		newReportsListCmd(opts),
		newReportsStatsCmd(opts),
		newReportsBreakdownCmd(opts),
		newReportsExportCmd(opts),
	)
	return cmd
}

func newReportsListCmd(opts *globalOptions) *cobra.Command {
	var (
		sev    int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports filtered by severity and address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd, cfg)
			if err != nil {
				return err
			}

			reports, err := svc.ListReports(cmd.Context(), models.ReportFilter{
				Severity:     models.Severity(sev),
				AddressQuery: search,
			})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, reports, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "ID\tSEVERITY\tCOST\tSTATUS\tADDRESS")
				for _, r := range reports {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						r.ID, r.SeverityLabel, currency.FormatInt(r.EstimatedCost), r.Status, r.Location.Address)
				}
			})
		},
	}

	cmd.Flags().IntVar(&sev, "severity", 0, "Exact severity 1..5 (0 = any)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive address substring")
	return cmd
}

func newReportsStatsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd, cfg)
			if err != nil {
				return err
			}

			stats, err := svc.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			view := statsView{
				DashboardStats:          *stats,
				TotalEstimatedCostLabel: currency.FormatInt(stats.TotalEstimatedCost),
			}

			return render(cmd.OutOrStdout(), format, view, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "Total reports\t%d\n", stats.TotalReports)
				fmt.Fprintf(w, "Pending\t%d\n", stats.PendingReports)
				fmt.Fprintf(w, "Estimated cost\t%s\n", view.TotalEstimatedCostLabel)
				fmt.Fprintf(w, "Avg severity\t%.1f\n", stats.AvgSeverity)
				fmt.Fprintf(w, "Critical\t%d\n", stats.CriticalCount)
				fmt.Fprintf(w, "This week\t%d\n", stats.ReportsThisWeek)
			})
		},
	}
}

func newReportsBreakdownCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show report count and cost per severity level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd, cfg)
			if err != nil {
				return err
			}

			rows, err := svc.GetSeverityBreakdown(cmd.Context())
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, rows, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "SEVERITY\tCOUNT\tTOTAL COST")
				for _, row := range rows {
					fmt.Fprintf(w, "%d %s\t%d\t%s\n", row.Severity, row.Label, row.Count, currency.FormatInt(row.TotalCost))
				}
			})
		},
	}
}

func newReportsExportCmd(opts *globalOptions) *cobra.Command {
	var (
		outPath string
		sev     int
		search  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports as a GeoJSON FeatureCollection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd, cfg)
			if err != nil {
				return err
			}

			reports, err := svc.ListReports(cmd.Context(), models.ReportFilter{
				Severity:     models.Severity(sev),
				AddressQuery: search,
			})
			if err != nil {
				return err
			}
			data, err := export.GeoJSON(reports)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d reports to %s\n", len(reports), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&sev, "severity", 0, "Exact severity 1..5 (0 = any)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive address substring")
	return cmd
}
