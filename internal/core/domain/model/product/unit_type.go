package product

import (
	"fmt"

	"supermarket/internal/pkg/errs"
)

// UnitType represents the measurement unit a product is sold in.
// It is a closed enumeration; values arriving from external sources must be
// parsed with UnitTypeFromString so that unknown units are rejected up front.
type UnitType int

const (
	// UnitUnknown represents an invalid or undefined unit type.
	// This value (0) helps catch uninitialized UnitType values.
	UnitUnknown UnitType = iota

	// UnitPiece is used for products sold per item.
	UnitPiece

	// UnitKilogram is used for products sold by the kilogram.
	UnitKilogram

	// UnitGram is used for products sold by the gram.
	UnitGram

	// UnitLitre is used for products sold by the litre.
	UnitLitre

	// UnitMillilitre is used for products sold by the millilitre.
	UnitMillilitre

	// UnitDozen is used for products sold per twelve items.
	UnitDozen
)

// getUnitTypeStrings returns a map of UnitType values to their string representations.
func getUnitTypeStrings() map[UnitType]string {
	return map[UnitType]string{
		UnitUnknown:    "unknown",
		UnitPiece:      "piece",
		UnitKilogram:   "kg",
		UnitGram:       "g",
		UnitLitre:      "litre",
		UnitMillilitre: "ml",
		UnitDozen:      "dozen",
	}
}

// getValidUnitTypeStrings returns a map of only valid UnitType values.
func getValidUnitTypeStrings() map[UnitType]string {
	//nolint:exhaustive // UnitUnknown is intentionally excluded as it's invalid
	return map[UnitType]string{
		UnitPiece:      "piece",
		UnitKilogram:   "kg",
		UnitGram:       "g",
		UnitLitre:      "litre",
		UnitMillilitre: "ml",
		UnitDozen:      "dozen",
	}
}

// UnitTypeFromString parses a unit type from its string representation.
// Accepted values are "piece", "kg", "g", "litre", "ml" and "dozen".
// Returns an error for any other input.
func UnitTypeFromString(s string) (UnitType, error) {
	for unit, str := range getValidUnitTypeStrings() {
		if str == s {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"unitType",
		fmt.Errorf("%q is not a valid unit type", s),
	)
}

// Validate checks if the UnitType value is valid.
// UnitUnknown (0) and any other values are invalid.
func (u UnitType) Validate() error {
	if _, ok := getValidUnitTypeStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitType",
			fmt.Errorf("%d is not a valid unit type", u),
		)
	}
	return nil
}

// String returns the human-readable name of the unit type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (u UnitType) String() string {
	if str, ok := getUnitTypeStrings()[u]; ok {
		return str
	}
	return "unknown"
}
