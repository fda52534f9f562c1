package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shenikar/pothole_reporting_system/internal/media"
	"github.com/shenikar/pothole_reporting_system/internal/models"
	"github.com/shenikar/pothole_reporting_system/internal/severity"
	"github.com/shenikar/pothole_reporting_system/pkg/currency"
	"github.com/spf13/cobra"
)

// analysisView is a generated report together with its reference assessment
type analysisView struct {
	Report             *models.PotholeReport `json:"report" yaml:"report"`
	Description        string                `json:"description" yaml:"description"`
	PriorityRepair     bool                  `json:"priority_repair" yaml:"priority_repair"`
	Recommendation     string                `json:"recommendation" yaml:"recommendation"`
	EstimatedCostLabel string                `json:"estimated_cost_label" yaml:"estimated_cost_label"`
}

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var (
		address string
		lat     float64
		lng     float64
		delay   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Generate a pothole report for a local photo or video",
		Long: `Generate a pothole report for a local photo or video.

The file type is detected from its content; only images and videos are
accepted. Without --address the report is placed at the default location.
The generated report is printed and not stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				cfg.AnalysisDelay = delay
			}

			ref, err := media.FromFile(args[0])
			if err != nil {
				return err
			}

			svc, err := opts.newService(cmd, cfg)
			if err != nil {
				return err
			}

			loc := models.Location{Address: address}
			if address != "" {
				loc.Lat, loc.Lng = lat, lng
			}
			report, err := svc.AnalyzeMedia(cmd.Context(), ref, loc)
			if err != nil {
				return err
			}

			level, _ := severity.Lookup(report.Severity)
			view := analysisView{
				Report:             report,
				Description:        level.Description,
				PriorityRepair:     severity.IsPriority(report.Severity),
				Recommendation:     severity.Recommendation(report.Severity),
				EstimatedCostLabel: currency.FormatInt(report.EstimatedCost),
			}
			return render(cmd.OutOrStdout(), format, view, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\t%s\n", report.ID)
				fmt.Fprintf(w, "SEVERITY\t%d (%s)\n", report.Severity, report.SeverityLabel)
				fmt.Fprintf(w, "COST\t%s\n", view.EstimatedCostLabel)
				fmt.Fprintf(w, "SIZE\t%s x %s\n", report.Dimensions.Diameter, report.Dimensions.Depth)
				fmt.Fprintf(w, "ADDRESS\t%s\n", report.Location.Address)
				fmt.Fprintf(w, "RECOMMENDATION\t%s\n", view.Recommendation)
			})
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Street address of the pothole")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude, used together with --address")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude, used together with --address")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Simulated processing delay (default: ANALYSIS_DELAY)")
	return cmd
}
