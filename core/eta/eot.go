package eta

import "github.com/tkerdo/portflow/core/model"

// OperationEstimate is the output of the earliest-operation-time stage.
type OperationEstimate struct {
	EOT           model.Clock
	InspectionMin float64
	PilotageMin   float64
}

// inspectionMinutes returns the customs/safety inspection overhead.
// Tankers always get the full inspection regardless of size.
func inspectionMinutes(category model.VesselCategory, lengthM float64) float64 {
	switch {
	case category == model.CategoryTanker:
		return 60
	case lengthM > 300:
		return 45
	case lengthM < 150:
		return 20
	default:
		return 30
	}
}

func pilotageMinutes(lengthM float64) float64 {
	switch {
	case lengthM > 300:
		return 25
	case lengthM < 150:
		return 10
	default:
		return 15
	}
}

// EstimateOperation derives the earliest operable time from a corrected
// ETA: inspection plus pilotage preparation, wrapped around midnight.
func EstimateOperation(correctedETA model.Clock, category model.VesselCategory, lengthM float64) OperationEstimate {
	insp := inspectionMinutes(category, lengthM)
	pilot := pilotageMinutes(lengthM)
	return OperationEstimate{
		EOT:           correctedETA.Add(insp + pilot),
		InspectionMin: insp,
		PilotageMin:   pilot,
	}
}
