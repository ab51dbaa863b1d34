package formula

import "math"

// isFinite is true for any IEEE-754 value that is neither infinite nor
// NaN. Division by zero, overflow, and NaN-producing operations all map
// to KindDiv0.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
