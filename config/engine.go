package config

import "fmt"

// EngineConfig holds the tunable parameters of the scheduling engine.
type EngineConfig struct {
	// Seed initializes the engine's random source. Zero means seed from
	// the current time; any other value makes runs reproducible.
	Seed int64 `json:"seed"`
	// Iterations bounds the neighborhood search.
	Iterations int `json:"iterations"`
	// InsertProbability is the per-iteration chance of trying an insert move.
	InsertProbability float64 `json:"insert_probability"`
	// TimeSlots discretizes the 24h horizon for channel conflict detection.
	TimeSlots int `json:"time_slots"`
	// DeepChannelCapacity and FeederChannelCapacity bound concurrent transits.
	DeepChannelCapacity   int `json:"deep_channel_capacity"`
	FeederChannelCapacity int `json:"feeder_channel_capacity"`
	// DistanceNM is the assumed approach distance for virtual arrival.
	DistanceNM float64 `json:"distance_nm"`
	// BaseSpeedKn and OptimalSpeedKn bound the virtual-arrival speed band.
	BaseSpeedKn    float64 `json:"base_speed_kn"`
	OptimalSpeedKn float64 `json:"optimal_speed_kn"`
	// UKCMarginM is the under-keel clearance added to vessel drafts.
	UKCMarginM float64 `json:"ukc_margin_m"`
	// MaxDraftM is the port-wide draft ceiling for candidate berths.
	MaxDraftM float64 `json:"max_draft_m"`
	// LengthMarginRatio is the berth length safety factor.
	LengthMarginRatio float64 `json:"length_margin_ratio"`
	// HistoricalBiasMinutes feeds the ETA corrector; 0 disables it.
	HistoricalBiasMinutes float64 `json:"historical_bias_minutes"`
}

// SetDefaults applies sane defaults.
func (c *EngineConfig) SetDefaults() {
	if c.Iterations == 0 {
		c.Iterations = 75
	}
	if c.InsertProbability == 0 {
		c.InsertProbability = 0.3
	}
	if c.TimeSlots == 0 {
		c.TimeSlots = 10
	}
	if c.DeepChannelCapacity == 0 {
		c.DeepChannelCapacity = 1
	}
	if c.FeederChannelCapacity == 0 {
		c.FeederChannelCapacity = 2
	}
	if c.DistanceNM == 0 {
		c.DistanceNM = 50
	}
	if c.BaseSpeedKn == 0 {
		c.BaseSpeedKn = 14
	}
	if c.OptimalSpeedKn == 0 {
		c.OptimalSpeedKn = 12
	}
	if c.UKCMarginM == 0 {
		c.UKCMarginM = 1.0
	}
	if c.MaxDraftM == 0 {
		c.MaxDraftM = 15.0
	}
	if c.LengthMarginRatio == 0 {
		c.LengthMarginRatio = 1.1
	}
}

// Validate checks mandatory relationships between parameters.
func (c EngineConfig) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}
	if c.InsertProbability < 0 || c.InsertProbability > 1 {
		return fmt.Errorf("insert_probability must be in [0,1]")
	}
	if c.TimeSlots <= 0 {
		return fmt.Errorf("time_slots must be positive")
	}
	if c.OptimalSpeedKn > c.BaseSpeedKn {
		return fmt.Errorf("optimal_speed_kn must not exceed base_speed_kn")
	}
	if c.DistanceNM <= 0 {
		return fmt.Errorf("distance_nm must be positive")
	}
	if c.LengthMarginRatio < 1 {
		return fmt.Errorf("length_margin_ratio must be at least 1")
	}
	if c.MaxDraftM <= 0 {
		return fmt.Errorf("max_draft_m must be positive")
	}
	return nil
}
