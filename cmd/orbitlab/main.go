package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diego4rmando/orbitlab/internal/analysis"
	"github.com/diego4rmando/orbitlab/internal/catalog"
	"github.com/diego4rmando/orbitlab/internal/report"
	"github.com/diego4rmando/orbitlab/internal/runner"
)

var (
	catalogFile   string
	jsonOut       bool
	workers       int
	dt            float64
	maxTime       float64
	threshold     float64
	energyDt      float64
	energyTime    float64
	stabilityDt   float64
	stabilityTime float64
	perturbation  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "three-body periodic orbit tester",
	}

	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "extra orbit catalog (yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output results as JSON")

	testCmd := &cobra.Command{
		Use:   "test [orbit]",
		Short: "test orbits for periodicity, energy conservation and stability",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTest,
	}
	addAnalysisFlags(testCmd)
	testCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers when testing all orbits")

	customCmd := &cobra.Command{
		Use:   "custom VX VY",
		Short: "test a custom choreography orbit with the given initial velocities",
		Args:  cobra.ExactArgs(2),
		RunE:  runCustom,
	}
	addAnalysisFlags(customCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available orbit configurations",
		RunE:  listOrbits,
	}

	rootCmd.AddCommand(testCmd, customCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnalysisFlags(cmd *cobra.Command) {
	p := analysis.DefaultPeriodOptions()
	d := analysis.DefaultDriftOptions()
	s := analysis.DefaultStabilityOptions()

	cmd.Flags().Float64Var(&dt, "dt", p.Dt, "periodicity search timestep")
	cmd.Flags().Float64Var(&maxTime, "max-time", p.MaxTime, "periodicity search horizon")
	cmd.Flags().Float64Var(&threshold, "threshold", p.Threshold, "return-distance threshold")
	cmd.Flags().Float64Var(&energyDt, "energy-dt", d.Dt, "energy conservation timestep")
	cmd.Flags().Float64Var(&energyTime, "energy-time", d.Horizon, "energy conservation horizon")
	cmd.Flags().Float64Var(&stabilityDt, "stability-dt", s.Dt, "stability estimation timestep")
	cmd.Flags().Float64Var(&stabilityTime, "stability-time", s.Horizon, "stability estimation horizon")
	cmd.Flags().Float64Var(&perturbation, "perturbation", s.Perturbation, "stability perturbation magnitude")
}

func analysisOptions() runner.Options {
	return runner.Options{
		Period: analysis.PeriodOptions{
			Dt:        dt,
			MaxTime:   maxTime,
			Threshold: threshold,
		},
		Drift: analysis.DriftOptions{
			Dt:      energyDt,
			Horizon: energyTime,
		},
		Stability: analysis.StabilityOptions{
			Dt:           stabilityDt,
			Horizon:      stabilityTime,
			Perturbation: perturbation,
		},
	}
}

func loadCatalog() (catalog.Catalog, error) {
	c := catalog.Builtin()
	if catalogFile != "" {
		extra, err := catalog.Load(catalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		c.Merge(extra)
	}
	return c, nil
}

func runTest(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	opts := analysisOptions()

	var results []runner.Result

	if len(args) == 1 {
		key := args[0]
		cfg, ok := c[key]
		if !ok {
			return fmt.Errorf("unknown orbit %q (use 'orbitlab list' to see available configurations)", key)
		}

		res, err := runner.New(opts).TestOrbit(context.Background(), key, cfg)
		if err != nil {
			res.Fault = err.Error()
		}
		results = []runner.Result{res}
	} else {
		results = runner.Batch(context.Background(), c, workers, opts)
	}

	return emit(results)
}

func runCustom(cmd *cobra.Command, args []string) error {
	vx, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid VX: %w", err)
	}
	vy, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid VY: %w", err)
	}

	res, err := runner.New(analysisOptions()).TestOrbit(context.Background(), "custom", catalog.Custom(vx, vy))
	if err != nil {
		res.Fault = err.Error()
	}

	return emit([]runner.Result{res})
}

func listOrbits(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME")
	for _, key := range c.Keys() {
		fmt.Fprintf(w, "%s\t%s\n", key, c[key].Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ntotal: %d orbits\n", len(c))
	return nil
}

func emit(results []runner.Result) error {
	if jsonOut {
		return report.WriteJSON(os.Stdout, results)
	}

	for _, r := range results {
		report.WriteDetail(os.Stdout, r)
		fmt.Println()
	}

	fmt.Println("summary:")
	return report.WriteTable(os.Stdout, results)
}
