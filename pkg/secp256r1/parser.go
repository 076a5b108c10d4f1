package secp256r1

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	errInvalidHashLen = errors.New("secp256r1: hash must be 32 bytes")
	errInvalidSigLen  = errors.New("secp256r1: compact signature must be 64 bytes")
	errInvalidDER     = errors.New("secp256r1: invalid DER signature")
)

// ParseCompactSignature parses a 64-byte compact signature R(32)‖S(32).
// Only the length is checked here; range and canonicality are enforced by
// IsProperSignature at verification time.
func ParseCompactSignature(sig []byte) (*Signature, error) {
	if len(sig) != 64 {
		return nil, errInvalidSigLen
	}
	return &Signature{
		R: new(big.Int).SetBytes(sig[:32]),
		S: new(big.Int).SetBytes(sig[32:]),
	}, nil
}

// SerializeCompact encodes the signature as R(32)‖S(32).
func (sig *Signature) SerializeCompact() []byte {
	out := make([]byte, 64)
	sig.R.FillBytes(out[:32])
	sig.S.FillBytes(out[32:])
	return out
}

// ParseDERSignature parses a DER-encoded ECDSA signature
// (SEQUENCE { r INTEGER, s INTEGER }). Trailing bytes and non-positive
// integers are rejected.
func ParseDERSignature(der []byte) (*Signature, error) {
	r, s := new(big.Int), new(big.Int)

	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, errInvalidDER
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, errInvalidDER
	}
	return &Signature{R: r, S: s}, nil
}

// SerializeDER encodes the signature in DER.
func (sig *Signature) SerializeDER() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R)
		b.AddASN1BigInt(sig.S)
	})
	return b.Bytes()
}
