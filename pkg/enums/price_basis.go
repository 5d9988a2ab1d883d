package enums

import "fmt"

// PriceBasis records how a catalog price is quoted.
type PriceBasis string

const (
	PriceBasisPerNight   PriceBasis = "per_night"
	PriceBasisPerPerson  PriceBasis = "per_person"
	PriceBasisPerVehicle PriceBasis = "per_vehicle"
	PriceBasisPerGroup   PriceBasis = "per_group"
)

var validPriceBases = []PriceBasis{
	PriceBasisPerNight,
	PriceBasisPerPerson,
	PriceBasisPerVehicle,
	PriceBasisPerGroup,
}

// String implements fmt.Stringer.
func (p PriceBasis) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PriceBasis.
func (p PriceBasis) IsValid() bool {
	for _, candidate := range validPriceBases {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePriceBasis converts raw input into a PriceBasis.
func ParsePriceBasis(value string) (PriceBasis, error) {
	for _, candidate := range validPriceBases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price basis %q", value)
}
