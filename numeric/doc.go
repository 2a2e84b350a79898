// Package numeric defines the minimal integer capability set shared by the
// continued-fraction and Pell-equation packages, together with concrete
// implementations for arbitrary-precision and fixed-width integers.
//
// 🚀 Why a capability set?
//
//	Convergents and Pell solutions are built from three operations only:
//	construction from a small integer, addition and multiplication.
//	Algorithms that are written against Arithmetic[T] therefore run
//	unchanged over *big.Int or over machine words.
//
// ✨ Implementations:
//   - BigInt: exact *big.Int arithmetic; never fails.
//   - Uint64: checked uint64 arithmetic; overflow returns ErrOverflow.
//   - Int64: checked int64 arithmetic; overflow returns ErrOverflow.
//
// Overflow is never wrapped silently: Pell solutions grow exponentially,
// so a fixed-width caller must learn about the first lost bit.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/surd/numeric"
//
//	var ar numeric.Uint64
//	v, err := ar.Mul(1<<40, 1<<40)
//	if errors.Is(err, numeric.ErrOverflow) {
//	    // switch to numeric.BigInt
//	}
package numeric
