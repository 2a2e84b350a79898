package numeric

import "math/big"

// BigInt implements Arithmetic over *big.Int. It never returns an error.
// Every result is a newly allocated *big.Int.
type BigInt struct{}

// FromUint64 returns v as a new *big.Int.
func (BigInt) FromUint64(v uint64) (*big.Int, error) {
	return new(big.Int).SetUint64(v), nil
}

// Add returns a + b.
func (BigInt) Add(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Add(a, b), nil
}

// Mul returns a · b.
func (BigInt) Mul(a, b *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(a, b), nil
}
