// Package secp256r1 verifies ECDSA signatures and recovers public keys on
// the NIST P-256 (secp256r1) curve, as used by passkey/WebAuthn and
// secure-enclave authentication flows.
//
// The engine is a pure computation library: finite-field arithmetic over
// math/big, Jacobian-coordinate point operations, a 16-entry combination
// table driving a 2-bit-windowed double-scalar multiplication (Shamir's
// trick), curve-membership validation and low-s signature canonicalization.
// Every call is independent; there is no shared mutable state.
//
// # Quick Start
//
//	import "github.com/passkeycore/p256/pkg/secp256r1"
//
//	engine := secp256r1.NewEngine()
//
//	h := secp256r1.HashMessage(message)
//	if engine.Verify(h, r, s, qx, qy) {
//	    // signature is valid and canonical
//	}
//
//	pub := engine.Recover(h, v, r, s)
//	if !pub.IsIdentity() {
//	    // pub is the signer's public key
//	}
//
// Only canonical (low-s) signatures verify. A caller holding a signature
// with s > N/2 must normalize it first:
//
//	s = secp256r1.NormalizeS(s)
//
// # Accelerated verification
//
// An optional native or hardware backend can be plugged in through the
// AcceleratedVerifier interface. Verify consults it first and falls back to
// the software path only on an explicit ErrAcceleratorUnsupported signal;
// VerifyStrict requires it and surfaces ErrNoAccelerator when it is absent:
//
//	engine := secp256r1.NewEngine().WithAccelerator(enclaveVerifier)
//	valid, err := engine.VerifyStrict(h, r, s, qx, qy)
//
// # Custom field arithmetic
//
// The modular inverse and exponentiation collaborator can be replaced,
// e.g. to route through a constant-time implementation:
//
//	engine := secp256r1.NewEngine().WithFieldArithmetic(myField)
package secp256r1
