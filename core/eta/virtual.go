package eta

import "github.com/tkerdo/portflow/core/model"

// Default virtual-arrival parameters. The speed band is the window inside
// which slowing down still gets the vessel to the berth on time.
const (
	DefaultDistanceNM     = 50
	DefaultBaseSpeedKn    = 14
	DefaultOptimalSpeedKn = 12

	maxVirtualSlackMinutes = 180
)

// SpeedPlan is the output of the virtual-arrival stage.
type SpeedPlan struct {
	RecommendedSpeedKn float64
	FuelSavingsTons    float64
	VirtualArrival     bool
}

// VirtualArrival computes fuel-optimal approach speeds for vessels whose
// berth frees up after their corrected arrival.
type VirtualArrival struct {
	DistanceNM     float64
	BaseSpeedKn    float64
	OptimalSpeedKn float64
}

// NewVirtualArrival returns an optimizer with the default approach
// distance and speed band.
func NewVirtualArrival() VirtualArrival {
	return VirtualArrival{
		DistanceNM:     DefaultDistanceNM,
		BaseSpeedKn:    DefaultBaseSpeedKn,
		OptimalSpeedKn: DefaultOptimalSpeedKn,
	}
}

// consumption models hourly fuel burn as a quadratic in speed, clamped
// at zero.
func consumption(speedKn float64) float64 {
	c := 0.05*speedKn*speedKn - 1.2*speedKn + 10
	if c < 0 {
		return 0
	}
	return c
}

// Plan returns the speed recommendation given the corrected ETA and the
// time the target berth becomes available. Virtual arrival only engages
// when the slack is positive, at most three hours, and the required speed
// falls inside the [optimal, base] band.
func (o VirtualArrival) Plan(correctedETA, berthAvailable model.Clock) SpeedPlan {
	plan := SpeedPlan{RecommendedSpeedKn: o.BaseSpeedKn}

	slack := correctedETA.MinutesUntil(berthAvailable)
	if slack <= 0 || slack > maxVirtualSlackMinutes {
		return plan
	}

	required := o.DistanceNM * 60 / slack
	if required < o.OptimalSpeedKn || required > o.BaseSpeedKn {
		return plan
	}

	baseTons := consumption(o.BaseSpeedKn) * (o.DistanceNM / o.BaseSpeedKn)
	slowTons := consumption(required) * (o.DistanceNM / required)
	savings := baseTons - slowTons
	if savings < 0 {
		savings = 0
	}

	plan.RecommendedSpeedKn = required
	plan.FuelSavingsTons = savings
	plan.VirtualArrival = true
	return plan
}
