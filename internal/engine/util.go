// internal/engine/util.go
package engine

import "math"

// roundHalfUp rounds a non-negative quantity to the nearest integer, ties
// away from zero. Inputs here are validated non-negative before rounding.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
