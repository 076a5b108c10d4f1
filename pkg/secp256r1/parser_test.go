package secp256r1

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func TestCompactSignatureRoundTrip(t *testing.T) {
	hash := HashMessage([]byte("compact"))
	r, s, _, err := newTestSignature(bytes32(hash))
	if err != nil {
		t.Fatal(err)
	}

	sig := &Signature{R: r, S: s}
	parsed, err := ParseCompactSignature(sig.SerializeCompact())
	if err != nil {
		t.Fatal(err)
	}
	if parsed.R.Cmp(r) != 0 || parsed.S.Cmp(s) != 0 {
		t.Fatal("compact round trip mismatch")
	}
}

func TestParseCompactSignatureLength(t *testing.T) {
	if _, err := ParseCompactSignature(make([]byte, 63)); !errors.Is(err, errInvalidSigLen) {
		t.Error("63-byte signature accepted")
	}
	if _, err := ParseCompactSignature(make([]byte, 65)); !errors.Is(err, errInvalidSigLen) {
		t.Error("65-byte signature accepted")
	}
}

func TestParseDERFromStandardLibrary(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	hash := HashMessage([]byte("der interop"))
	der, err := ecdsa.SignASN1(rand.Reader, priv, bytes32(hash))
	if err != nil {
		t.Fatal(err)
	}

	sig, err := ParseDERSignature(der)
	if err != nil {
		t.Fatal(err)
	}

	e := NewEngine()
	if !e.Verify(hash, sig.R, NormalizeS(sig.S), priv.PublicKey.X, priv.PublicKey.Y) {
		t.Fatal("parsed DER signature does not verify")
	}
}

func TestDERSignatureRoundTrip(t *testing.T) {
	hash := HashMessage([]byte("der round trip"))
	r, s, _, err := newTestSignature(bytes32(hash))
	if err != nil {
		t.Fatal(err)
	}

	sig := &Signature{R: r, S: s}
	der, err := sig.SerializeDER()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseDERSignature(der)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.R.Cmp(r) != 0 || parsed.S.Cmp(s) != 0 {
		t.Fatal("DER round trip mismatch")
	}
}

func TestParseDERRejectsMalformed(t *testing.T) {
	hash := HashMessage([]byte("der malformed"))
	r, s, _, err := newTestSignature(bytes32(hash))
	if err != nil {
		t.Fatal(err)
	}
	der, err := (&Signature{R: r, S: s}).SerializeDER()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseDERSignature(append(der, 0x00)); err == nil {
		t.Error("trailing byte accepted")
	}
	if _, err := ParseDERSignature(der[:len(der)-1]); err == nil {
		t.Error("truncated encoding accepted")
	}
	if _, err := ParseDERSignature(nil); err == nil {
		t.Error("empty encoding accepted")
	}
	if _, err := ParseDERSignature([]byte{0x30, 0x00}); err == nil {
		t.Error("empty sequence accepted")
	}

	negative, err := (&Signature{R: big.NewInt(-1), S: big.NewInt(1)}).SerializeDER()
	if err == nil {
		if _, err := ParseDERSignature(negative); err == nil {
			t.Error("negative integer accepted")
		}
	}
}
