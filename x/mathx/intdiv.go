package mathx

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b) for unsigned integers. b==0 yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// RoundDiv returns floor((a + b/2)/b), classic rounding for unsigned values.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// RoundDivS rounds a/b to nearest with halves away from zero, for signed a
// and positive b. Used for fixed-point scaling in the sensor drivers.
func RoundDivS[T constraints.Signed](a, b T) T {
	if b == 0 {
		return 0
	}
	if a < 0 {
		return (a - b/2) / b
	}
	return (a + b/2) / b
}
