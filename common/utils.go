package common

import "cmp"

// Clamp restricts v to the closed interval [lo, hi]. The lower bound wins when lo > hi,
// matching max(lo, min(hi, v)).
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: the clamped value
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}
