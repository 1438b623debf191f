package scenarios

import (
	"path/filepath"
	"testing"
)

func TestScenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files found")
	}
	for _, f := range files {
		f := f
		t.Run(filepath.Base(f), func(t *testing.T) {
			sc, err := Load(f)
			if err != nil {
				t.Fatalf("load %s: %v", f, err)
			}
			RunScenario(t, sc)
		})
	}
}

func TestLoadRejectsBadClock(t *testing.T) {
	sc := &Scenario{
		Vessels: []VesselDef{{ID: "x", Category: "bulk", LengthM: 100, DraftM: 5, Priority: 1, ETA: "25:99"}},
	}
	if _, err := sc.ToInput(); err == nil {
		t.Fatal("expected error for invalid eta")
	}
}
