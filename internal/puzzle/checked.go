package puzzle

import "golang.org/x/exp/constraints"

// CheckedAdd returns a+b, or ok=false when the sum overflows T.
func CheckedAdd[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// CheckedSub returns a-b, or ok=false when b > a.
func CheckedSub[T constraints.Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}

	return a - b, true
}
