package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tkerdo/portflow/app"
	"github.com/tkerdo/portflow/core/conflict"
	"github.com/tkerdo/portflow/infra/metrics"
	"github.com/tkerdo/portflow/qa/scenarios"
)

var (
	scenarioPath string
	paretoRuns   int
	metricsAddr  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a vessel batch from a scenario file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (yaml)")
	planCmd.Flags().IntVar(&paretoRuns, "runs", 1, "optimizer runs; more than one prints a Pareto front")
	planCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address during the run")
	_ = planCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	planner, in, err := setupPlanner()
	if err != nil {
		return err
	}
	defer planner.Close()
	planner.Start(ctx)

	if metricsAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, metricsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
			}
		}()
	}

	if paretoRuns > 1 {
		all, front := planner.PlanRuns(in, paretoRuns)
		fmt.Printf("%d runs, %d non-dominated solutions\n", len(all), len(front))
		for i, sol := range front {
			fmt.Printf("  #%d objective=%.1f efficiency=%.1f cost=%.1f emission_avoided=%.2ft\n",
				i+1, sol.Objective, sol.Efficiency, sol.Cost, sol.EmissionAvoided)
		}
		return nil
	}

	out := planner.Plan(in)
	printSchedule(out)
	return nil
}

func setupPlanner() (*app.Planner, app.Input, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, app.Input{}, fmt.Errorf("load config: %w", err)
	}
	sc, err := scenarios.Load(scenarioPath)
	if err != nil {
		return nil, app.Input{}, fmt.Errorf("load scenario: %w", err)
	}
	if sc.Seed != 0 {
		cfg.Engine.Seed = sc.Seed
	}
	in, err := sc.ToInput()
	if err != nil {
		return nil, app.Input{}, fmt.Errorf("scenario input: %w", err)
	}
	planner, err := app.New(cfg)
	if err != nil {
		return nil, app.Input{}, err
	}
	return planner, in, nil
}

func printSchedule(out app.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VESSEL\tETA\tCORRECTED\tEOT\tBERTH\tSTART\tDURATION\tSPEED\tSAVINGS")
	for _, v := range out.Vessels {
		berth, start, dur := "-", "-", "-"
		if v.Scheduled {
			berth = v.AssignedBerth
			start = fmt.Sprintf("%05.2fh", v.StartHour)
			dur = fmt.Sprintf("%.0fh", v.DurationH)
		}
		speed := "-"
		if v.VirtualArrival {
			speed = fmt.Sprintf("%.1fkn", v.RecommendedSpeedKn)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2ft\n",
			v.ID, v.DeclaredETA, v.CorrectedETA, v.EOT, berth, start, dur, speed, v.FuelSavingsTons)
	}
	w.Flush()

	fmt.Printf("\nrun %s: %d/%d assigned, objective %.1f, fuel savings %.2ft, emission avoided %.2ft, %s\n",
		out.RunID, out.KPI.Assigned, len(out.Vessels), out.Solution.Objective,
		out.KPI.TotalFuelSavingsTons, out.KPI.EmissionAvoidedTons, out.Elapsed.Round(1e6))
	printConflicts(out.Report.Conflicts)
}

func printConflicts(records []conflict.Record) {
	if len(records) == 0 {
		fmt.Println("no conflicts detected")
		return
	}
	for _, r := range records {
		switch r.Kind {
		case conflict.KindBerthOverlap:
			fmt.Printf("conflict [%s/%s] %s and %s overlap at the berth\n",
				r.Kind, r.Severity, r.VesselA, r.VesselB)
		default:
			fmt.Printf("conflict [%s/%s] %s and %s share the %s channel in slot %d\n",
				r.Kind, r.Severity, r.VesselA, r.VesselB, r.Channel, r.TimeSlot)
		}
	}
}
