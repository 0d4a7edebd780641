package enums

import "fmt"

// SeedUnit is the measurement unit of a collected seed lot.
type SeedUnit string

const (
	SeedUnitCount SeedUnit = "count"
	SeedUnitKg    SeedUnit = "kg"
	SeedUnitGram  SeedUnit = "g"
)

var validSeedUnits = []SeedUnit{
	SeedUnitCount,
	SeedUnitKg,
	SeedUnitGram,
}

// String implements fmt.Stringer.
func (s SeedUnit) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SeedUnit.
func (s SeedUnit) IsValid() bool {
	for _, candidate := range validSeedUnits {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSeedUnit converts raw input into a SeedUnit.
func ParseSeedUnit(value string) (SeedUnit, error) {
	for _, candidate := range validSeedUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid seed unit %q", value)
}
