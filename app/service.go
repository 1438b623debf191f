// Package app wires the scheduling pipeline together: ETA correction,
// operation-time estimation, virtual-arrival planning, candidate
// generation, neighborhood search and conflict detection, plus the
// observability plumbing around them.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/tkerdo/portflow/config"
	"github.com/tkerdo/portflow/core/conflict"
	"github.com/tkerdo/portflow/core/eta"
	"github.com/tkerdo/portflow/core/events"
	coremetrics "github.com/tkerdo/portflow/core/metrics"
	"github.com/tkerdo/portflow/core/model"
	"github.com/tkerdo/portflow/core/search"
	"github.com/tkerdo/portflow/core/slot"
	"github.com/tkerdo/portflow/core/tide"
	"github.com/tkerdo/portflow/infra/logger"
	inframetrics "github.com/tkerdo/portflow/infra/metrics"
	"github.com/tkerdo/portflow/internal/eventbus"
)

// Input is one planning request: the vessel batch, the berth layout, the
// tide table and any known berth occupancy windows.
type Input struct {
	Vessels   []model.Vessel
	Berths    []model.Berth
	Tides     []tide.Sample
	Occupancy map[string]model.Interval
}

// KPISummary aggregates headline numbers of a planning run.
type KPISummary struct {
	Assigned             int
	Delayed              int
	TotalFuelSavingsTons float64
	MeanFuelSavingsTons  float64
	MeanStartHour        float64
	EmissionAvoidedTons  float64
}

// Result is the outcome of one planning run. Vessels carry every derived
// field; Berths are updated occupancy snapshots.
type Result struct {
	RunID      string
	Vessels    []model.Vessel
	Berths     []model.Berth
	Candidates map[string][]model.CandidateSlot
	Solution   model.ScheduleSolution
	Report     conflict.Report
	KPI        KPISummary
	Elapsed    time.Duration
}

// Planner runs the scheduling pipeline for vessel batches. It is safe to
// create one Planner per batch; each Plan call operates on its own copied
// state.
type Planner struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.PlanSink
	bus  eventbus.EventBus
}

// New creates a Planner from the configuration, building the configured
// metrics sinks.
func New(cfg *config.Config) (*Planner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewWithSink(cfg, sink), nil
}

// NewWithSink creates a Planner around an already built metrics sink.
func NewWithSink(cfg *config.Config, sink coremetrics.PlanSink) *Planner {
	if cfg == nil {
		cfg = config.Default()
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Planner{
		cfg:  cfg,
		log:  logger.New("planner"),
		sink: sink,
		bus:  eventbus.New(),
	}
}

// Start launches the metrics event collector. It returns immediately; the
// collector stops when the context is canceled.
func (p *Planner) Start(ctx context.Context) {
	inframetrics.StartEventCollector(ctx, p.bus, p.sink)
}

// Close releases the event bus.
func (p *Planner) Close() {
	p.bus.Close()
}

func (p *Planner) newRand() *rand.Rand {
	seed := p.cfg.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Plan runs the full pipeline over the input and returns the final
// schedule. Vessels that cannot be planned stay in the result unscheduled;
// the run itself never fails on infeasibility.
func (p *Planner) Plan(in Input) Result {
	started := time.Now()
	runID := uuid.NewString()
	rng := p.newRand()

	vessels, berths := p.prepare(in)
	table := tide.NewTable(in.Tides)

	vessels = p.predictArrivals(vessels, berths, in.Occupancy, rng)
	candidates := p.generateCandidates(vessels, berths, table, in.Occupancy)

	optimizer := p.newOptimizer(rng)
	res := optimizer.Optimize(vessels, berths)

	vessels = res.Best.Apply(vessels)
	report := p.detect(vessels, berths)
	berths = updateOccupancy(berths, vessels)

	solution := res.Best
	solution.EmissionAvoided = search.EmissionAvoided(vessels)

	out := Result{
		RunID:      runID,
		Vessels:    vessels,
		Berths:     berths,
		Candidates: candidates,
		Solution:   solution,
		Report:     report,
		KPI:        summarize(vessels, solution),
		Elapsed:    time.Since(started),
	}
	p.publish(out, res)
	return out
}

// PlanRuns executes the optimizer several times with derived seeds over
// one shared arrival prediction, and returns every solution alongside the
// non-dominated front.
func (p *Planner) PlanRuns(in Input, runs int) (all, front []model.ScheduleSolution) {
	rng := p.newRand()
	vessels, berths := p.prepare(in)
	vessels = p.predictArrivals(vessels, berths, in.Occupancy, rng)

	for i := 0; i < runs; i++ {
		optimizer := p.newOptimizer(rand.New(rand.NewSource(rng.Int63())))
		res := optimizer.Optimize(vessels, berths)
		sol := res.Best
		sol.EmissionAvoided = search.EmissionAvoided(vessels)
		all = append(all, sol)
	}
	return all, search.ParetoFront(all)
}

// prepare validates input and drops vessels and berths that cannot take
// part in planning. Malformed entries are excluded, never fatal.
func (p *Planner) prepare(in Input) ([]model.Vessel, []model.Berth) {
	vessels := make([]model.Vessel, 0, len(in.Vessels))
	for _, v := range in.Vessels {
		if err := v.Validate(); err != nil {
			p.log.Warnf("skipping vessel: %v", err)
			continue
		}
		vessels = append(vessels, v)
	}
	berths := make([]model.Berth, 0, len(in.Berths))
	for _, b := range in.Berths {
		if err := b.Validate(); err != nil {
			p.log.Warnf("skipping berth: %v", err)
			continue
		}
		berths = append(berths, b)
	}
	return vessels, berths
}

// predictArrivals runs the ETA correction, operation-time and
// virtual-arrival stages, writing only derived fields on vessel copies.
func (p *Planner) predictArrivals(vessels []model.Vessel, berths []model.Berth, occ map[string]model.Interval, rng *rand.Rand) []model.Vessel {
	corrector := eta.NewCorrector(rng)
	va := eta.VirtualArrival{
		DistanceNM:     p.cfg.Engine.DistanceNM,
		BaseSpeedKn:    p.cfg.Engine.BaseSpeedKn,
		OptimalSpeedKn: p.cfg.Engine.OptimalSpeedKn,
	}

	out := make([]model.Vessel, len(vessels))
	copy(out, vessels)
	for i := range out {
		c := corrector.Correct(out[i], p.cfg.Engine.HistoricalBiasMinutes)
		out[i].CorrectedETA = c.CorrectedETA
		out[i].BiasMinutes = c.BiasMinutes
		out[i].Delayed = c.Delayed

		op := eta.EstimateOperation(out[i].CorrectedETA, out[i].Category, out[i].LengthM)
		out[i].EOT = op.EOT
		out[i].InspectionMin = op.InspectionMin
		out[i].PilotageMin = op.PilotageMin

		plan := va.Plan(out[i].CorrectedETA, berthAvailableFor(out[i], berths, occ))
		out[i].RecommendedSpeedKn = plan.RecommendedSpeedKn
		out[i].FuelSavingsTons = plan.FuelSavingsTons
		out[i].VirtualArrival = plan.VirtualArrival

		out[i].DurationH = slot.ServiceHours(out[i].LengthM)
	}
	return out
}

// berthAvailableFor estimates when a berth frees up for the vessel: the
// earliest occupancy release among its zone-eligible berths. With no
// occupied eligible berth the corrected ETA is returned, which yields zero
// slack and keeps virtual arrival off.
func berthAvailableFor(v model.Vessel, berths []model.Berth, occ map[string]model.Interval) model.Clock {
	earliest := -1.0
	for _, b := range berths {
		window, ok := occ[b.ID]
		if !ok || !model.ZoneEligible(v, b) {
			continue
		}
		if earliest < 0 || window.End < earliest {
			earliest = window.End
		}
	}
	if earliest < 0 {
		return v.CorrectedETA
	}
	return model.Clock(0).Add(earliest * 60)
}

func (p *Planner) generateCandidates(vessels []model.Vessel, berths []model.Berth, table tide.Table, occ map[string]model.Interval) map[string][]model.CandidateSlot {
	gen := slot.NewGenerator(table)
	gen.Checker.UKCMarginM = p.cfg.Engine.UKCMarginM
	gen.MaxDraftM = p.cfg.Engine.MaxDraftM
	gen.LengthMarginRatio = p.cfg.Engine.LengthMarginRatio

	out := make(map[string][]model.CandidateSlot, len(vessels))
	for _, v := range vessels {
		out[v.ID] = gen.Generate(v, berths, occ)
	}
	return out
}

func (p *Planner) newOptimizer(rng *rand.Rand) *search.Optimizer {
	o := search.NewOptimizer(rng)
	o.Iterations = p.cfg.Engine.Iterations
	o.InsertProb = p.cfg.Engine.InsertProbability
	o.Detector = conflict.Detector{
		TimeSlots:      p.cfg.Engine.TimeSlots,
		DeepCapacity:   p.cfg.Engine.DeepChannelCapacity,
		FeederCapacity: p.cfg.Engine.FeederChannelCapacity,
	}
	return o
}

func (p *Planner) detect(vessels []model.Vessel, berths []model.Berth) conflict.Report {
	zones := make(map[string]model.Zone, len(berths))
	for _, b := range berths {
		zones[b.ID] = b.Zone
	}
	d := conflict.Detector{
		TimeSlots:      p.cfg.Engine.TimeSlots,
		DeepCapacity:   p.cfg.Engine.DeepChannelCapacity,
		FeederCapacity: p.cfg.Engine.FeederChannelCapacity,
	}
	return d.Detect(vessels, zones)
}

// updateOccupancy marks assigned berths occupied on fresh berth snapshots.
func updateOccupancy(berths []model.Berth, vessels []model.Vessel) []model.Berth {
	occupant := make(map[string]string)
	for _, v := range vessels {
		if v.Scheduled {
			occupant[v.AssignedBerth] = v.ID
		}
	}
	out := make([]model.Berth, len(berths))
	copy(out, berths)
	for i := range out {
		if id, ok := occupant[out[i].ID]; ok {
			out[i].Occupied = true
			out[i].OccupantID = id
		}
	}
	return out
}

func summarize(vessels []model.Vessel, sol model.ScheduleSolution) KPISummary {
	var kpi KPISummary
	var savings, starts []float64
	for _, v := range vessels {
		if v.Delayed {
			kpi.Delayed++
		}
		savings = append(savings, v.FuelSavingsTons)
		kpi.TotalFuelSavingsTons += v.FuelSavingsTons
		if v.Scheduled {
			kpi.Assigned++
			starts = append(starts, v.StartHour)
		}
	}
	if len(savings) > 0 {
		kpi.MeanFuelSavingsTons = stat.Mean(savings, nil)
	}
	if len(starts) > 0 {
		kpi.MeanStartHour = stat.Mean(starts, nil)
	}
	kpi.EmissionAvoidedTons = sol.EmissionAvoided
	return kpi
}

// publish pushes run telemetry to the bus and the metrics sink, and logs
// the outcome. Consumers never feed back into planning.
func (p *Planner) publish(out Result, res search.Result) {
	for _, imp := range res.Improvements {
		p.bus.Publish(events.ImprovementEvent{
			RunID:     out.RunID,
			Iteration: imp.Iteration,
			Move:      string(imp.Move),
			Objective: imp.Objective,
		})
	}
	for _, rec := range out.Report.Conflicts {
		p.bus.Publish(events.ConflictEvent{RunID: out.RunID, Record: rec})
	}
	p.bus.Publish(events.PlanEvent{
		RunID:     out.RunID,
		Vessels:   len(out.Vessels),
		Assigned:  out.KPI.Assigned,
		Conflicts: len(out.Report.Conflicts),
		Objective: out.Solution.Objective,
	})

	if err := p.sink.RecordPlanResult(coremetrics.PlanResult{
		RunID:           out.RunID,
		Vessels:         len(out.Vessels),
		Assigned:        out.KPI.Assigned,
		Delayed:         out.KPI.Delayed,
		Conflicts:       len(out.Report.Conflicts),
		Iterations:      res.Iterations,
		Improvements:    len(res.Improvements),
		Objective:       out.Solution.Objective,
		Efficiency:      out.Solution.Efficiency,
		Cost:            out.Solution.Cost,
		FuelSavingsTons: out.KPI.TotalFuelSavingsTons,
		Elapsed:         out.Elapsed,
		Time:            time.Now(),
	}); err != nil {
		p.log.Errorf("record plan result: %v", err)
	}

	p.log.Infof("plan %s: %d/%d vessels assigned, %d conflicts, objective %.1f",
		out.RunID, out.KPI.Assigned, len(out.Vessels), len(out.Report.Conflicts), out.Solution.Objective)
}
