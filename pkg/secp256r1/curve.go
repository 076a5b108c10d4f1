package secp256r1

import "math/big"

// Params holds the fixed constants of the NIST P-256 (secp256r1) curve,
// satisfying the Weierstrass equation y² = x³ + A·x + B (mod P).
//
// The value returned by P256 is shared and read-only; callers must not
// mutate its fields.
type Params struct {
	P     *big.Int // prime order of the coordinate field
	N     *big.Int // order of the group generated by G
	A     *big.Int // curve coefficient a = -3 mod P
	B     *big.Int // curve coefficient b
	Gx    *big.Int // generator x-coordinate
	Gy    *big.Int // generator y-coordinate
	HalfN *big.Int // malleability threshold N/2
}

var p256 = newP256Params()

// P256 returns the curve parameters of NIST P-256.
func P256() *Params {
	return p256
}

// sqrtExp is (P+1)/4, the exponent for modular square roots. Valid because
// P ≡ 3 (mod 4).
var sqrtExp *big.Int

func newP256Params() *Params {
	// SEC 2 / FIPS 186-4 curve constants.
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)
	b, _ := new(big.Int).SetString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	gx, _ := new(big.Int).SetString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	gy, _ := new(big.Int).SetString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)

	a := new(big.Int).Sub(p, big.NewInt(3))

	sqrtExp = new(big.Int).Add(p, big.NewInt(1))
	sqrtExp.Rsh(sqrtExp, 2)

	return &Params{
		P:     p,
		N:     n,
		A:     a,
		B:     b,
		Gx:    gx,
		Gy:    gy,
		HalfN: new(big.Int).Rsh(n, 1),
	}
}
