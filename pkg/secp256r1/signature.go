package secp256r1

import (
	"math/big"

	sha256 "github.com/minio/sha256-simd"
)

// Signature represents an ECDSA signature over P-256.
type Signature struct {
	R *big.Int // r component of the signature
	S *big.Int // s component of the signature
}

// IsProperSignature reports whether (r, s) is in valid canonical range:
// 0 < r < N and 0 < s ≤ N/2.
//
// The low-s bound rejects the malleable twin (r, N−s) of every signature.
// A caller holding a non-canonical signature must normalize it (see
// NormalizeS) before verification; this check never flips s silently.
func IsProperSignature(r, s *big.Int) bool {
	if r == nil || s == nil {
		return false
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return false
	}
	if r.Cmp(p256.N) >= 0 {
		return false
	}
	return s.Cmp(p256.HalfN) <= 0
}

// NormalizeS returns the canonical low-s equivalent of s. Values already in
// [1, N/2] are returned as a copy; values above are mapped to N−s.
func NormalizeS(s *big.Int) *big.Int {
	if s.Cmp(p256.HalfN) > 0 {
		return new(big.Int).Sub(p256.N, s)
	}
	return new(big.Int).Set(s)
}

// HashMessage hashes a message using SHA-256 and returns the digest as a
// 256-bit integer, the form the verification and recovery entry points take.
func HashMessage(message []byte) *big.Int {
	h := sha256.Sum256(message)
	return new(big.Int).SetBytes(h[:])
}
