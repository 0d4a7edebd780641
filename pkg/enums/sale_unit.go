package enums

import "fmt"

// SaleUnit is the measurement unit of sold stock.
type SaleUnit string

const (
	SaleUnitKg    SaleUnit = "kg"
	SaleUnitSeeds SaleUnit = "seeds"
)

var validSaleUnits = []SaleUnit{
	SaleUnitKg,
	SaleUnitSeeds,
}

// String implements fmt.Stringer.
func (s SaleUnit) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SaleUnit.
func (s SaleUnit) IsValid() bool {
	for _, candidate := range validSaleUnits {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSaleUnit converts raw input into a SaleUnit.
func ParseSaleUnit(value string) (SaleUnit, error) {
	for _, candidate := range validSaleUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sale unit %q", value)
}
