package secp256r1

import (
	"errors"
	"math/big"
)

// Verify reports whether (r, s) is a valid canonical signature over the
// message hash h by the public key (qx, qy).
//
// Inputs failing the canonical-range or curve-membership checks yield false
// without any curve arithmetic. When an accelerated verifier is configured
// its judgment is authoritative; the software path runs only when the
// backend signals ErrAcceleratorUnsupported.
func (e *Engine) Verify(h, r, s, qx, qy *big.Int) bool {
	if h == nil || !IsProperSignature(r, s) || !IsValidPublicKey(qx, qy) {
		return false
	}

	if e.accel != nil {
		valid, err := e.accel.VerifySignature(
			bytes32(h), bytes32(r), bytes32(s), bytes32(qx), bytes32(qy),
		)
		if err == nil {
			return valid
		}
		if !errors.Is(err, ErrAcceleratorUnsupported) {
			// Any other backend failure is not a verdict.
			return false
		}
	}

	return e.verifySoftware(h, r, s, qx, qy)
}

// VerifyStrict is like Verify but mandates the accelerated path. It returns
// ErrNoAccelerator when no backend is configured or the backend reports the
// input unsupported; invalid signatures return (false, nil).
func (e *Engine) VerifyStrict(h, r, s, qx, qy *big.Int) (bool, error) {
	if h == nil || !IsProperSignature(r, s) || !IsValidPublicKey(qx, qy) {
		return false, nil
	}
	if e.accel == nil {
		return false, ErrNoAccelerator
	}

	valid, err := e.accel.VerifySignature(
		bytes32(h), bytes32(r), bytes32(s), bytes32(qx), bytes32(qy),
	)
	if err != nil {
		if errors.Is(err, ErrAcceleratorUnsupported) {
			return false, ErrNoAccelerator
		}
		return false, err
	}
	return valid, nil
}

// verifySoftware runs the pure-computation verification equation: with
// w = s⁻¹ mod N, the signature matches iff the x-coordinate of
// (h·w)·G + (r·w)·Q equals r mod N.
func (e *Engine) verifySoftware(h, r, s, qx, qy *big.Int) bool {
	n := e.params.N

	table := e.buildTable(qx, qy)

	w := e.field.InvModPrime(s, n)
	if w == nil {
		return false
	}
	uG := mulMod(new(big.Int).Mod(h, n), w, n)
	uQ := mulMod(r, w, n)

	pt := e.shamirMultiply(table, uQ, uG)
	if pt.IsIdentity() {
		return false
	}
	return new(big.Int).Mod(pt.X, n).Cmp(r) == 0
}

// bytes32 returns v as a left-padded 32-byte big-endian slice.
func bytes32(v *big.Int) []byte {
	var out [32]byte
	v.FillBytes(out[:])
	return out[:]
}
