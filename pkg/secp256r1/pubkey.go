package secp256r1

import (
	"errors"
	"math/big"
)

var (
	errInvalidPubKey = errors.New("secp256r1: invalid public key encoding")
	errOffCurve      = errors.New("secp256r1: point not on curve")
)

// CompressPublicKey encodes a public key in 33-byte SEC1 compressed form:
// 0x02‖X for even Y, 0x03‖X for odd Y.
func CompressPublicKey(pub AffinePoint) ([]byte, error) {
	if !IsValidPublicKey(pub.X, pub.Y) {
		return nil, errOffCurve
	}
	out := make([]byte, 33)
	out[0] = 0x02 | byte(pub.Y.Bit(0))
	pub.X.FillBytes(out[1:])
	return out, nil
}

// DecompressPublicKey decodes a 33-byte SEC1 compressed public key,
// reconstructing Y through the engine's modular square root.
func (e *Engine) DecompressPublicKey(data []byte) (AffinePoint, error) {
	if len(data) != 33 || (data[0] != 0x02 && data[0] != 0x03) {
		return identityPoint(), errInvalidPubKey
	}
	p := e.params.P

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(p) >= 0 {
		return identityPoint(), errInvalidPubKey
	}

	// y² = x³ + a·x + b
	y2 := mulMod(x, x, p)
	y2 = mulMod(y2, x, p)
	y2 = addMod(y2, mulMod(e.params.A, x, p), p)
	y2 = addMod(y2, e.params.B, p)

	y := e.modSqrt(y2)
	if y == nil {
		return identityPoint(), errOffCurve
	}
	if y.Bit(0) != uint(data[0]&1) {
		y = new(big.Int).Sub(p, y)
	}

	if !IsValidPublicKey(x, y) {
		return identityPoint(), errOffCurve
	}
	return AffinePoint{X: x, Y: y}, nil
}

// ParsePublicKey decodes a public key from either SEC1 compressed (33 bytes)
// or uncompressed 0x04‖X‖Y (65 bytes) form.
func (e *Engine) ParsePublicKey(data []byte) (AffinePoint, error) {
	switch len(data) {
	case 33:
		return e.DecompressPublicKey(data)
	case 65:
		if data[0] != 0x04 {
			return identityPoint(), errInvalidPubKey
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:])
		if !IsValidPublicKey(x, y) {
			return identityPoint(), errOffCurve
		}
		return AffinePoint{X: x, Y: y}, nil
	default:
		return identityPoint(), errInvalidPubKey
	}
}
