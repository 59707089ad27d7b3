// Package report formats analysis results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/diego4rmando/orbitlab/internal/runner"
)

// WriteTable renders a summary table of results.
func WriteTable(out io.Writer, results []runner.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORBIT\tPERIODIC\tPERIOD\tMIN DIST\tMAX DRIFT\tLYAPUNOV\tSTABILITY")

	for _, r := range results {
		if r.Fault != "" {
			fmt.Fprintf(w, "%s\tfault\t-\t-\t-\t-\t%s\n", r.Name, r.Fault)
			continue
		}

		periodic := "no"
		period := "-"
		if r.Periodic {
			periodic = "yes"
			period = fmt.Sprintf("%.4f", *r.Period)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%.6f\t%.6f%%\t%.6f\t%s\n",
			r.Name,
			periodic,
			period,
			r.MinReturnDistance,
			r.MaxEnergyDriftPercent,
			r.LyapunovEstimate,
			r.StabilityRating,
		)
	}

	return w.Flush()
}

// WriteDetail renders the full diagnostics for a single result.
func WriteDetail(out io.Writer, r runner.Result) {
	fmt.Fprintf(out, "orbit: %s (%s)\n", r.Name, r.Key)

	if r.Fault != "" {
		fmt.Fprintf(out, "  fault: %s\n", r.Fault)
		return
	}

	if r.Periodic {
		fmt.Fprintf(out, "  period: %.4f\n", *r.Period)
	} else {
		fmt.Fprintln(out, "  period: not found within search time")
	}
	fmt.Fprintf(out, "  closest approach: %.6f\n", r.MinReturnDistance)
	fmt.Fprintf(out, "  initial energy: %.6f\n", r.InitialEnergy)
	fmt.Fprintf(out, "  max energy drift: %.6f%% (%s)\n", r.MaxEnergyDriftPercent, r.EnergyRating)
	fmt.Fprintf(out, "  final energy drift: %.6f%%\n", r.FinalEnergyDriftPercent)
	fmt.Fprintf(out, "  lyapunov estimate: %.6f (%s)\n", r.LyapunovEstimate, r.StabilityRating)
}

// WriteJSON encodes the results as indented JSON.
func WriteJSON(out io.Writer, results []runner.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
