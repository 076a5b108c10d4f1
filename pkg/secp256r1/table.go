package secp256r1

import "math/big"

// combTable is the fixed 16-entry combination table used by the combined
// scalar multiplier. Entry (a<<2)|b holds a·P + b·G for a, b ∈ {0..3},
// where P is the point the table was built from and G the curve generator.
// Entry 0 is the point at infinity.
type combTable [16]JacobianPoint

// buildTable precomputes all {0..3}·P + {0..3}·G combinations for the point
// (px, py). Beyond the two base entries, every entry costs one doubling or
// one addition of previously computed entries.
func (e *Engine) buildTable(px, py *big.Int) *combTable {
	var t combTable

	t[0] = jacobianInfinity()

	// Base entries and their small multiples: G column, P column.
	t[1] = newJacobian(e.params.Gx, e.params.Gy) // G
	t[2] = e.jacobianDouble(t[1])                // 2G
	t[3] = e.jacobianAdd(t[2], t[1].X, t[1].Y, t[1].Z)

	t[4] = newJacobian(px, py)    // P
	t[8] = e.jacobianDouble(t[4]) // 2P
	t[12] = e.jacobianAdd(t[8], t[4].X, t[4].Y, t[4].Z)

	// Cross combinations a·P + b·G.
	for a := 1; a < 4; a++ {
		for b := 1; b < 4; b++ {
			t[a<<2|b] = e.jacobianAdd(t[a<<2], t[b].X, t[b].Y, t[b].Z)
		}
	}

	return &t
}
