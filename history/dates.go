package history

import (
	"fmt"
	"strconv"
)

// Date bounds accepted for display.
const (
	MinDate      = 1
	MaxDate      = 9999
	FallbackDate = "0000"
)

// IsValidDate reports whether d is a displayable year.
func IsValidDate(d int) bool {
	return d >= MinDate && d <= MaxDate
}

// FormatDate returns d as text, or FallbackDate when d is out of range.
func FormatDate(d int) string {
	if !IsValidDate(d) {
		return FallbackDate
	}
	return strconv.Itoa(d)
}

// FormatDateText formats a textual year. Non-numeric input yields FallbackDate.
func FormatDateText(s string) string {
	d, err := strconv.Atoi(s)
	if err != nil {
		return FallbackDate
	}
	return FormatDate(d)
}

// ParseDate parses a 1-4 digit numeral as used by the dataset.
func ParseDate(s string) (int, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, fmt.Errorf("date %q: want 1-4 digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("date %q: not a numeral", s)
		}
	}
	return strconv.Atoi(s)
}

// RangeValidation is the advisory result of ValidateRange.
type RangeValidation struct {
	IsValid bool
	Errors  []string
}

// ValidateRange checks both dates and their ordering. It never blocks rendering;
// callers decide whether to surface the errors.
func ValidateRange(start, end int) RangeValidation {
	var errs []string
	startOK, endOK := IsValidDate(start), IsValidDate(end)
	if !startOK {
		errs = append(errs, "start date is invalid")
	}
	if !endOK {
		errs = append(errs, "end date is invalid")
	}
	if startOK && endOK && start > end {
		errs = append(errs, "start date cannot be after end date")
	}
	return RangeValidation{IsValid: len(errs) == 0, Errors: errs}
}
