package secp256r1

import "errors"

// ErrAcceleratorUnsupported is the explicit signal an AcceleratedVerifier
// returns when it cannot judge the given input. It is the only condition
// under which Verify falls back to the software path.
var ErrAcceleratorUnsupported = errors.New("secp256r1: accelerated verification unsupported")

// ErrNoAccelerator is returned by VerifyStrict when no accelerated verifier
// is configured or the configured one reports itself unsupported. It marks
// an availability problem, not an invalid signature.
var ErrNoAccelerator = errors.New("secp256r1: accelerated verifier unavailable")

// AcceleratedVerifier is an optional native or hardware verification
// backend. Each argument is a 256-bit big-endian unsigned integer.
//
// VerifySignature must either return a definite judgment (valid, nil) or
// signal ErrAcceleratorUnsupported. The engine pre-validates signature range
// and curve membership before delegating, so a backend never sees malformed
// input it could misjudge.
type AcceleratedVerifier interface {
	VerifySignature(hash, r, s, qx, qy []byte) (bool, error)

	// Name returns a human-readable name for this backend.
	Name() string
}
