package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shenikar/pothole_reporting_system/internal/severity"
	"github.com/shenikar/pothole_reporting_system/pkg/currency"
	"github.com/spf13/cobra"
)

type levelView struct {
	Severity          int    `json:"severity" yaml:"severity"`
	Label             string `json:"label" yaml:"label"`
	BaseCost          int    `json:"base_cost" yaml:"base_cost"`
	Diameter          string `json:"diameter" yaml:"diameter"`
	Depth             string `json:"depth" yaml:"depth"`
	Description       string `json:"description" yaml:"description"`
	ReferenceDiameter string `json:"reference_diameter" yaml:"reference_diameter"`
	ReferenceDepth    string `json:"reference_depth" yaml:"reference_depth"`
	PriorityRepair    bool   `json:"priority_repair" yaml:"priority_repair"`
}

func newSeverityCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "severity",
		Short: "Print the severity reference table (ASTM D6433)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}

			levels := severity.Levels()
			views := make([]levelView, len(levels))
			for i, l := range levels {
				views[i] = levelView{
					Severity:          int(l.Severity),
					Label:             l.Label,
					BaseCost:          l.BaseCost,
					Diameter:          l.Dimensions.Diameter,
					Depth:             l.Dimensions.Depth,
					Description:       l.Description,
					ReferenceDiameter: l.Reference.Diameter,
					ReferenceDepth:    l.Reference.Depth,
					PriorityRepair:    severity.IsPriority(l.Severity),
				}
			}

			return render(cmd.OutOrStdout(), format, views, func(w *tabwriter.Writer) {
				fmt.Fprintln(w, "SEVERITY\tLABEL\tBASE COST\tDIAMETER\tDEPTH\tPRIORITY")
				for _, v := range views {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
						v.Severity, v.Label, currency.FormatInt(v.BaseCost), v.Diameter, v.Depth, v.PriorityRepair)
				}
			})
		},
	}
}
