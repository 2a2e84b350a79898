package numeric

import (
	"fmt"
	"math"
	"math/bits"
)

// Uint64 implements Arithmetic over uint64 with overflow detection.
type Uint64 struct{}

// FromUint64 returns v unchanged.
func (Uint64) FromUint64(v uint64) (uint64, error) {
	return v, nil
}

// Add returns a + b, or ErrOverflow when the sum carries out of 64 bits.
func (Uint64) Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("uint64 %d + %d: %w", a, b, ErrOverflow)
	}

	return sum, nil
}

// Mul returns a · b, or ErrOverflow when the product needs more than 64 bits.
func (Uint64) Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("uint64 %d * %d: %w", a, b, ErrOverflow)
	}

	return lo, nil
}

// Int64 implements Arithmetic over int64 with overflow detection.
type Int64 struct{}

// FromUint64 returns v as int64, or ErrOverflow when v > math.MaxInt64.
func (Int64) FromUint64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("int64 from %d: %w", v, ErrOverflow)
	}

	return int64(v), nil
}

// Add returns a + b, or ErrOverflow when the signed sum wraps.
func (Int64) Add(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, fmt.Errorf("int64 %d + %d: %w", a, b, ErrOverflow)
	}

	return sum, nil
}

// Mul returns a · b, or ErrOverflow when the signed product wraps.
func (Int64) Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, fmt.Errorf("int64 %d * %d: %w", a, b, ErrOverflow)
	}

	return p, nil
}
