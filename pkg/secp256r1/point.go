package secp256r1

import "math/big"

// AffinePoint is a curve point in affine coordinates. The pair (0, 0), which
// is not on the curve, is the identity sentinel returned wherever an
// operation has no result.
type AffinePoint struct {
	X *big.Int
	Y *big.Int
}

// IsIdentity reports whether p is the (0, 0) sentinel.
func (p AffinePoint) IsIdentity() bool {
	return p.X != nil && p.Y != nil && p.X.Sign() == 0 && p.Y.Sign() == 0
}

// identityPoint returns a fresh (0, 0) sentinel.
func identityPoint() AffinePoint {
	return AffinePoint{X: new(big.Int), Y: new(big.Int)}
}

// JacobianPoint is a curve point in Jacobian projective coordinates,
// representing the affine point (X/Z², Y/Z³). Z = 0 denotes the point at
// infinity.
type JacobianPoint struct {
	X *big.Int
	Y *big.Int
	Z *big.Int
}

func (p JacobianPoint) isInfinity() bool {
	return p.Z == nil || p.Z.Sign() == 0
}

// jacobianInfinity returns the (0, 0, 0) point at infinity.
func jacobianInfinity() JacobianPoint {
	return JacobianPoint{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
}

// newJacobian lifts an affine point into Jacobian coordinates with Z = 1.
func newJacobian(x, y *big.Int) JacobianPoint {
	return JacobianPoint{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		Z: big.NewInt(1),
	}
}

// IsValidPublicKey reports whether (x, y) is a well-formed P-256 public key:
// both coordinates in [0, P) and the pair on the curve. The range check is
// independent of the curve-equation check, so coordinates ≥ P are rejected
// even when congruent to an on-curve point.
func IsValidPublicKey(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return false
	}
	if x.Cmp(p256.P) >= 0 || y.Cmp(p256.P) >= 0 {
		return false
	}

	// y² mod p
	y2 := mulMod(y, y, p256.P)

	// x³ + a·x + b mod p
	rhs := mulMod(x, x, p256.P)
	rhs = mulMod(rhs, x, p256.P)
	rhs = addMod(rhs, mulMod(p256.A, x, p256.P), p256.P)
	rhs = addMod(rhs, p256.B, p256.P)

	return y2.Cmp(rhs) == 0
}
