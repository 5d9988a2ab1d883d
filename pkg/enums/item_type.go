package enums

import "fmt"

// ItemType tags a selectable safari package component.
type ItemType string

const (
	ItemTypeLodge     ItemType = "lodge"
	ItemTypeActivity  ItemType = "activity"
	ItemTypeTransport ItemType = "transport"
	ItemTypeCultural  ItemType = "cultural"
)

var validItemTypes = []ItemType{
	ItemTypeLodge,
	ItemTypeActivity,
	ItemTypeTransport,
	ItemTypeCultural,
}

// String implements fmt.Stringer.
func (i ItemType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known ItemType.
func (i ItemType) IsValid() bool {
	for _, candidate := range validItemTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseItemType converts raw input into an ItemType.
func ParseItemType(value string) (ItemType, error) {
	for _, candidate := range validItemTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item type %q", value)
}

// ItemTypes returns all selectable item types in catalog display order.
func ItemTypes() []ItemType {
	out := make([]ItemType, len(validItemTypes))
	copy(out, validItemTypes)
	return out
}
