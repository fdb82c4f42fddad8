package types

import "errors"

// Substance holds the reference data for one catalog entry. FreezingPointC
// and BoilingPointC are the points at standard (1 atm) pressure.
// Implements: prd001-substance-catalog R2.
type Substance struct {
	Key            string  `json:"key"`             // Stable identifier ("water", "ethanol", ...).
	Name           string  `json:"name"`            // Display name ("Water (H₂O)").
	FreezingPointC float64 `json:"freezing_point"`  // °C at 1 atm.
	BoilingPointC  float64 `json:"boiling_point"`   // °C at 1 atm.
}

// Substance and classification errors (prd001-substance-catalog R7,
// prd002-state-classifier R4).
var (
	ErrUnknownSubstance = errors.New("unknown substance")
	ErrInvalidPressure  = errors.New("pressure must be greater than 0")
	ErrInvalidKey       = errors.New("substance key must not be empty")
	ErrInvalidName      = errors.New("substance name must not be empty")
	ErrCatalogCorrupt   = errors.New("catalog data is corrupt")
	ErrDuplicateKey     = errors.New("duplicate substance key")
)

// Validate checks structural validity of the substance. Physical
// consistency of the reference points is deliberately not part of
// validation; see Consistent.
func (s Substance) Validate() error {
	if s.Key == "" {
		return ErrInvalidKey
	}
	if s.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// Consistent reports whether the reference points are physically sensible
// (freezing strictly below boiling). Hand-edited data files can violate
// this; loading still succeeds and classification resolves ties by branch
// order, so callers use Consistent only to flag suspect entries.
func (s Substance) Consistent() bool {
	return s.FreezingPointC < s.BoilingPointC
}
