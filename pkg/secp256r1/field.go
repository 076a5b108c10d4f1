package secp256r1

import "math/big"

// FieldArithmetic is the modular-arithmetic collaborator used by the engine.
// Implementations must treat all values as 256-bit unsigned integers.
type FieldArithmetic interface {
	// InvModPrime returns the multiplicative inverse of a modulo the given
	// prime modulus, or nil when a ≡ 0 (mod modulus).
	InvModPrime(a, modulus *big.Int) *big.Int

	// ModExp returns base^exponent mod modulus.
	ModExp(base, exponent, modulus *big.Int) *big.Int
}

// bigIntField is the default FieldArithmetic, backed by math/big.
type bigIntField struct{}

func (bigIntField) InvModPrime(a, modulus *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, modulus)
}

func (bigIntField) ModExp(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// mulMod returns a·b mod m in [0, m).
func mulMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// subMod returns a−b mod m, normalized into [0, m).
func subMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

// addMod returns a+b mod m in [0, m).
func addMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}
