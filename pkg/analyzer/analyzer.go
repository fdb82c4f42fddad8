// Package analyzer implements the phase state classifier: given a
// temperature, a pressure, and a substance key, it computes the
// pressure-adjusted boiling point and classifies the substance as solid,
// liquid, or gas against the catalog's reference points.
// Implements: prd002-state-classifier; docs/ARCHITECTURE § Classifier.
package analyzer

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// boilingShiftPerAtm is the linear boiling-point correction in °C per atm
// away from standard pressure. A fixed approximation shared by all
// substances; real pressure curves are non-linear.
const boilingShiftPerAtm = 10.0

// Analyzer classifies substance states against an immutable catalog. It
// performs no I/O and holds no mutable state, so a single Analyzer is safe
// for concurrent use.
type Analyzer struct {
	catalog *types.Catalog
}

// New returns an Analyzer backed by the given catalog.
func New(catalog *types.Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// AdjustBoilingPoint applies the linear pressure correction to a nominal
// (1 atm) boiling point. At exactly 1 atm the nominal value is returned
// unchanged; the result is monotonically increasing in pressure.
func AdjustBoilingPoint(nominalC, pressureAtm float64) float64 {
	return nominalC + (pressureAtm-1.0)*boilingShiftPerAtm
}

// Analyze classifies the state of the substance identified by key at the
// given temperature (°C) and pressure (atm).
//
// Preconditions are checked in order: pressure must be positive
// (ErrInvalidPressure), then the key must exist in the catalog
// (ErrUnknownSubstance). Classification resolves boundary ties toward the
// earlier branch: at exactly the freezing point the state is SOLID, at
// exactly the adjusted boiling point it is GAS.
func (a *Analyzer) Analyze(temperatureC, pressureAtm float64, key string) (*types.AnalysisResult, error) {
	if pressureAtm <= 0 {
		return nil, fmt.Errorf("%w (got %g atm)", types.ErrInvalidPressure, pressureAtm)
	}

	substance, err := a.catalog.Lookup(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, key)
	}

	actualBoilingC := AdjustBoilingPoint(substance.BoilingPointC, pressureAtm)

	result := &types.AnalysisResult{
		SubstanceName:       substance.Name,
		TemperatureC:        temperatureC,
		PressureAtm:         pressureAtm,
		FreezingPointC:      substance.FreezingPointC,
		BoilingPointNormalC: substance.BoilingPointC,
		BoilingPointActualC: round1(actualBoilingC),
	}

	// First matching branch wins: inconsistent reference data (freezing
	// at or above boiling) still classifies deterministically.
	switch {
	case temperatureC <= substance.FreezingPointC:
		result.State = types.StateSolid
		result.FlaskState = types.FlaskFrozen
		result.Description = fmt.Sprintf(
			"The liquid is FROZEN because %g°C is at or below freezing point (%g°C)",
			temperatureC, substance.FreezingPointC)
	case temperatureC >= actualBoilingC:
		result.State = types.StateGas
		result.FlaskState = types.FlaskBoiling
		result.Description = fmt.Sprintf(
			"The liquid is BOILING because %g°C is at or above boiling point (%.1f°C)",
			temperatureC, actualBoilingC)
	default:
		result.State = types.StateLiquid
		result.FlaskState = types.FlaskStill
		result.Description = "The liquid is in normal LIQUID state"
	}

	return result, nil
}

// round1 rounds to one decimal place for presentation. Classification
// comparisons always use the unrounded value.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
