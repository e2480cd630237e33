package timeentry

import "math"

// Work-unit divisors are fixed domain constants: a full unit is 8
// normal hours or 6 overtime hours.
const (
	normalHoursPerUnit   = 8.0
	overtimeHoursPerUnit = 6.0
)

// IsValidHour reports whether v is a bookable hour value: non-negative
// and on the half-hour grid.
func IsValidHour(v float64) bool {
	if v < 0 {
		return false
	}
	scaled := v * 2
	return math.Trunc(scaled) == scaled
}

// WorkUnits converts raw hours into the normalized cross-employee
// productivity measure. Never stored, always derived.
func WorkUnits(normal, overtime float64) float64 {
	return normal/normalHoursPerUnit + overtime/overtimeHoursPerUnit
}
