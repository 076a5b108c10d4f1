package secp256r1

import (
	"math/big"

	"github.com/holiman/uint256"
)

// shamirMultiply computes u1·P + u2·G in one combined pass (Shamir's trick),
// where P and G are the two points baked into the table. Both scalars are
// consumed two bits at a time from the top, so the loop runs exactly 128
// rounds for every input; there is no early exit.
func (e *Engine) shamirMultiply(table *combTable, u1, u2 *big.Int) AffinePoint {
	s1, _ := uint256.FromBig(u1)
	s2, _ := uint256.FromBig(u2)

	acc := jacobianInfinity()
	for i := 0; i < 128; i++ {
		if !acc.isInfinity() {
			acc = e.jacobianDouble(acc)
			acc = e.jacobianDouble(acc)
		}

		pos := topWindow(s1)<<2 | topWindow(s2)
		if pos != 0 {
			if acc.isInfinity() {
				acc = table[pos]
			} else {
				acc = e.jacobianAdd(acc, table[pos].X, table[pos].Y, table[pos].Z)
			}
		}

		s1.Lsh(s1, 2)
		s2.Lsh(s2, 2)
	}

	return e.toAffine(acc)
}

// topWindow extracts the top two bits of a 256-bit scalar.
func topWindow(v *uint256.Int) uint64 {
	return v[3] >> 62
}
