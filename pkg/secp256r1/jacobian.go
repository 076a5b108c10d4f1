package secp256r1

import "math/big"

// Jacobian-coordinate point arithmetic. All operations allocate their
// results and never mutate their inputs, so points may be shared freely.

// jacobianAdd adds the distinct points p1 and (x2, y2, z2) using the CMO-2
// general addition formulas. Callers must route equal inputs through
// jacobianDouble and must not pass the point at infinity; the scalar
// multiplier guarantees both by construction.
func (e *Engine) jacobianAdd(p1 JacobianPoint, x2, y2, z2 *big.Int) JacobianPoint {
	p := e.params.P

	z1z1 := mulMod(p1.Z, p1.Z, p) // z1²
	z2z2 := mulMod(z2, z2, p)     // z2²

	u1 := mulMod(p1.X, z2z2, p)                // x1·z2²
	u2 := mulMod(x2, z1z1, p)                  // x2·z1²
	s1 := mulMod(p1.Y, mulMod(z2z2, z2, p), p) // y1·z2³
	s2 := mulMod(y2, mulMod(z1z1, p1.Z, p), p) // y2·z1³

	h := subMod(u2, u1, p)
	r := subMod(s2, s1, p)

	h2 := mulMod(h, h, p)
	h3 := mulMod(h2, h, p)
	u1h2 := mulMod(u1, h2, p)

	// x3 = r² − h³ − 2·u1·h²
	x3 := mulMod(r, r, p)
	x3 = subMod(x3, h3, p)
	x3 = subMod(x3, addMod(u1h2, u1h2, p), p)

	// y3 = r·(u1·h² − x3) − s1·h³
	y3 := mulMod(r, subMod(u1h2, x3, p), p)
	y3 = subMod(y3, mulMod(s1, h3, p), p)

	// z3 = h·z1·z2
	z3 := mulMod(h, mulMod(p1.Z, z2, p), p)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// jacobianDouble doubles the point (x, y, z).
func (e *Engine) jacobianDouble(pt JacobianPoint) JacobianPoint {
	p := e.params.P

	// m = 3·x² + a·z⁴
	xx := mulMod(pt.X, pt.X, p)
	m := addMod(addMod(xx, xx, p), xx, p)
	zz := mulMod(pt.Z, pt.Z, p)
	m = addMod(m, mulMod(e.params.A, mulMod(zz, zz, p), p), p)

	// s = 4·x·y²
	yy := mulMod(pt.Y, pt.Y, p)
	s := mulMod(pt.X, yy, p)
	s = addMod(s, s, p)
	s = addMod(s, s, p)

	// x3 = t = m² − 2s
	x3 := subMod(mulMod(m, m, p), addMod(s, s, p), p)

	// y3 = m·(s − t) − 8·y⁴
	y4 := mulMod(yy, yy, p)
	y4 = addMod(y4, y4, p)
	y4 = addMod(y4, y4, p)
	y4 = addMod(y4, y4, p)
	y3 := mulMod(m, subMod(s, x3, p), p)
	y3 = subMod(y3, y4, p)

	// z3 = 2·y·z
	z3 := mulMod(pt.Y, pt.Z, p)
	z3 = addMod(z3, z3, p)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// toAffine reduces a Jacobian point to affine coordinates. The point at
// infinity maps to the (0, 0) sentinel.
func (e *Engine) toAffine(pt JacobianPoint) AffinePoint {
	if pt.isInfinity() {
		return identityPoint()
	}
	p := e.params.P
	zinv := e.field.InvModPrime(pt.Z, p)
	if zinv == nil {
		return identityPoint()
	}
	zinv2 := mulMod(zinv, zinv, p)
	return AffinePoint{
		X: mulMod(pt.X, zinv2, p),
		Y: mulMod(pt.Y, mulMod(zinv2, zinv, p), p),
	}
}
