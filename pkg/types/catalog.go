package types

// Catalog is an insertion-ordered collection of substances keyed by their
// stable identifier. It is built once at startup by a CatalogStore and
// treated as immutable afterwards, so concurrent readers need no locking.
// Implements: prd001-substance-catalog R3.
type Catalog struct {
	keys    []string
	entries map[string]Substance
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Substance)}
}

// Add appends a substance to the catalog, preserving insertion order.
// Returns ErrDuplicateKey if the key is already present, or a validation
// error if the substance is structurally invalid.
func (c *Catalog) Add(s Substance) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := c.entries[s.Key]; ok {
		return ErrDuplicateKey
	}
	c.keys = append(c.keys, s.Key)
	c.entries[s.Key] = s
	return nil
}

// Lookup returns the substance for the given key.
// Returns ErrUnknownSubstance if the key is not present.
func (c *Catalog) Lookup(key string) (Substance, error) {
	s, ok := c.entries[key]
	if !ok {
		return Substance{}, ErrUnknownSubstance
	}
	return s, nil
}

// List returns all substances in insertion order.
func (c *Catalog) List() []Substance {
	out := make([]Substance, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k])
	}
	return out
}

// Keys returns the substance keys in insertion order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of substances in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// DefaultCatalog returns the five built-in substances seeded on first run.
// Reference points are at 1 atm.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, s := range []Substance{
		{Key: "water", Name: "Water (H₂O)", FreezingPointC: 0.0, BoilingPointC: 100.0},
		{Key: "ethanol", Name: "Ethanol (C₂H₅OH)", FreezingPointC: -114.1, BoilingPointC: 78.4},
		{Key: "mercury", Name: "Mercury (Hg)", FreezingPointC: -38.8, BoilingPointC: 356.7},
		{Key: "nitrogen", Name: "Nitrogen (N₂)", FreezingPointC: -210.0, BoilingPointC: -195.8},
		{Key: "oxygen", Name: "Oxygen (O₂)", FreezingPointC: -218.8, BoilingPointC: -183.0},
	} {
		// Add cannot fail here: keys are unique and non-empty.
		_ = c.Add(s)
	}
	return c
}
