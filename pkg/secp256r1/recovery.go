package secp256r1

import (
	"errors"
	"math/big"
)

var errRecoveryFailed = errors.New("secp256r1: public key recovery failed")

// Recover derives the signer's public key from the message hash h, the
// recovery indicator v (0 or 1, the parity of the ephemeral point's
// y-coordinate) and the canonical signature (r, s).
//
// The identity sentinel (0, 0) is returned for any failure: improper
// signature range, v outside {0, 1}, or no curve point at x = r.
//
// Recovery is only meaningful for canonical (low-s) signatures; recovering
// from the malleable twin (r, N−s) yields a different key without error.
func (e *Engine) Recover(h *big.Int, v byte, r, s *big.Int) AffinePoint {
	if h == nil || v > 1 || !IsProperSignature(r, s) {
		return identityPoint()
	}
	p := e.params.P
	n := e.params.N

	// Rebuild the ephemeral point: r is its x-coordinate.
	ry2 := mulMod(r, r, p)
	ry2 = mulMod(ry2, r, p)
	ry2 = addMod(ry2, mulMod(e.params.A, r, p), p)
	ry2 = addMod(ry2, e.params.B, p)

	ry := e.modSqrt(ry2)
	if ry == nil {
		return identityPoint()
	}

	// Pick the root whose parity matches v.
	if ry.Bit(0) != uint(v) {
		ry = new(big.Int).Sub(p, ry)
	}

	// Q = r⁻¹·(s·R − h·G), expressed as one combined multiply against the
	// table built from R: (s·w)·R + (−h·w)·G with w = r⁻¹ mod N.
	table := e.buildTable(r, ry)
	w := e.field.InvModPrime(r, n)
	if w == nil {
		return identityPoint()
	}
	uR := mulMod(s, w, n)
	uG := subMod(n, new(big.Int).Mod(h, n), n)
	uG = mulMod(uG, w, n)

	return e.shamirMultiply(table, uR, uG)
}

// RecoverCompact recovers a public key from a 32-byte hash, a 64-byte
// compact signature R(32)‖S(32) and a recovery indicator.
func (e *Engine) RecoverCompact(hash, sig []byte, v byte) (AffinePoint, error) {
	if len(hash) != 32 {
		return identityPoint(), errInvalidHashLen
	}
	parsed, err := ParseCompactSignature(sig)
	if err != nil {
		return identityPoint(), err
	}
	pub := e.Recover(new(big.Int).SetBytes(hash), v, parsed.R, parsed.S)
	if pub.IsIdentity() {
		return pub, errRecoveryFailed
	}
	return pub, nil
}

// modSqrt returns a square root of a modulo P, or nil when a is a
// non-residue. Uses the exponent (P+1)/4, valid because P ≡ 3 (mod 4);
// candidates are re-squared since the exponentiation yields a wrong value
// for non-residues rather than failing.
func (e *Engine) modSqrt(a *big.Int) *big.Int {
	root := e.field.ModExp(a, sqrtExp, e.params.P)
	if mulMod(root, root, e.params.P).Cmp(a) != 0 {
		return nil
	}
	return root
}
