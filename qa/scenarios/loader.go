// Package scenarios loads yaml planning scenarios used by the qa suite
// and the CLI.
package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tkerdo/portflow/app"
	"github.com/tkerdo/portflow/core/model"
	"github.com/tkerdo/portflow/core/tide"
)

type VesselDef struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name,omitempty"`
	Category string  `yaml:"category"`
	LengthM  float64 `yaml:"length_m"`
	DraftM   float64 `yaml:"draft_m"`
	Priority int     `yaml:"priority"`
	ETA      string  `yaml:"eta"`
}

func (v VesselDef) ToModel() (model.Vessel, error) {
	eta, err := model.ParseClock(v.ETA)
	if err != nil {
		return model.Vessel{}, fmt.Errorf("vessel %s: %w", v.ID, err)
	}
	return model.Vessel{
		ID:          v.ID,
		Name:        v.Name,
		Category:    model.VesselCategory(v.Category),
		LengthM:     v.LengthM,
		DraftM:      v.DraftM,
		Priority:    v.Priority,
		DeclaredETA: eta,
	}, nil
}

type BerthDef struct {
	ID      string  `yaml:"id"`
	Zone    string  `yaml:"zone"`
	LengthM float64 `yaml:"length_m"`
	DepthM  float64 `yaml:"depth_m"`
}

func (b BerthDef) ToModel() model.Berth {
	return model.Berth{
		ID:      b.ID,
		Zone:    model.Zone(b.Zone),
		LengthM: b.LengthM,
		DepthM:  b.DepthM,
	}
}

type TideDef struct {
	Time    string  `yaml:"time"`
	HeightM float64 `yaml:"height_m"`
}

func (t TideDef) ToModel() (tide.Sample, error) {
	at, err := model.ParseClock(t.Time)
	if err != nil {
		return tide.Sample{}, fmt.Errorf("tide sample: %w", err)
	}
	return tide.Sample{Time: at, HeightM: t.HeightM}, nil
}

type OccupancyDef struct {
	Berth     string  `yaml:"berth"`
	StartHour float64 `yaml:"start_hour"`
	EndHour   float64 `yaml:"end_hour"`
}

type Expected struct {
	MinAssigned  int `yaml:"min_assigned"`
	MaxConflicts int `yaml:"max_conflicts"`
}

type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Seed        int64          `yaml:"seed"`
	Vessels     []VesselDef    `yaml:"vessels"`
	Berths      []BerthDef     `yaml:"berths"`
	Tides       []TideDef      `yaml:"tides"`
	Occupancy   []OccupancyDef `yaml:"occupancy,omitempty"`
	Expected    Expected       `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ToInput converts the scenario definitions into a planning input.
func (sc *Scenario) ToInput() (app.Input, error) {
	var out app.Input
	for _, vd := range sc.Vessels {
		v, err := vd.ToModel()
		if err != nil {
			return out, err
		}
		out.Vessels = append(out.Vessels, v)
	}
	for _, bd := range sc.Berths {
		out.Berths = append(out.Berths, bd.ToModel())
	}
	for _, td := range sc.Tides {
		s, err := td.ToModel()
		if err != nil {
			return out, err
		}
		out.Tides = append(out.Tides, s)
	}
	if len(sc.Occupancy) > 0 {
		out.Occupancy = make(map[string]model.Interval, len(sc.Occupancy))
		for _, od := range sc.Occupancy {
			out.Occupancy[od.Berth] = model.Interval{Start: od.StartHour, End: od.EndHour}
		}
	}
	return out, nil
}
