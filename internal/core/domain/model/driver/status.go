package driver

import (
	"fmt"

	"supermarket/internal/pkg/errs"
)

// Status represents whether a driver is available for dispatch.
// Values are persisted and exposed using the strings "active" and "inactive".
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Active indicates the driver may be assigned orders.
	Active

	// Inactive indicates the driver is temporarily unavailable.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Active:        "active",
		Inactive:      "inactive",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// StatusFromString parses a driver status from its external string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid driver status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid driver status", s),
		)
	}
	return nil
}

// String returns the external string form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
