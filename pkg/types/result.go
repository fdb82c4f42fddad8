package types

// Physical states reported by the classifier.
// Implements: prd002-state-classifier R2.
const (
	StateSolid  = "SOLID"
	StateLiquid = "LIQUID"
	StateGas    = "GAS"
)

// Flask states drive the front-end rendering. Each classification state
// maps to exactly one flask state.
const (
	FlaskFrozen  = "frozen"
	FlaskStill   = "still"
	FlaskBoiling = "boiling"
)

// AnalysisResult is the outcome of one classification. JSON field names
// follow the established wire contract so existing front ends keep working
// unmodified.
// Implements: prd002-state-classifier R3.
type AnalysisResult struct {
	SubstanceName       string  `json:"liquid_name"`          // Display name, e.g. "Water (H₂O)".
	TemperatureC        float64 `json:"temperature"`          // Input temperature, °C.
	PressureAtm         float64 `json:"pressure"`             // Input pressure, atm.
	State               string  `json:"state"`                // SOLID, LIQUID, or GAS.
	FlaskState          string  `json:"flask_state"`          // frozen, still, or boiling.
	Description         string  `json:"description"`          // Which boundary was crossed, if any.
	FreezingPointC      float64 `json:"freezing_point"`       // Reference freezing point, °C.
	BoilingPointNormalC float64 `json:"boiling_point_normal"` // Boiling point at 1 atm, °C.
	BoilingPointActualC float64 `json:"boiling_point_actual"` // Pressure-adjusted boiling point, rounded to 1 decimal.
}
