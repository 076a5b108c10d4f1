package secp256r1

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"math/big"
	"testing"
)

func TestIsValidPublicKeyGenerator(t *testing.T) {
	if !IsValidPublicKey(p256.Gx, p256.Gy) {
		t.Fatal("generator rejected")
	}
}

func TestIsValidPublicKeyGenerated(t *testing.T) {
	for i := 0; i < 4; i++ {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if !IsValidPublicKey(priv.PublicKey.X, priv.PublicKey.Y) {
			t.Errorf("generated key %d rejected", i)
		}
	}
}

func TestIsValidPublicKeyRejectsOffCurve(t *testing.T) {
	if IsValidPublicKey(big.NewInt(1), big.NewInt(1)) {
		t.Error("(1,1) accepted")
	}
	if IsValidPublicKey(new(big.Int), new(big.Int)) {
		t.Error("identity sentinel accepted")
	}
	if IsValidPublicKey(nil, nil) {
		t.Error("nil coordinates accepted")
	}

	// y flipped off-curve.
	badY := new(big.Int).Add(p256.Gy, big.NewInt(1))
	if IsValidPublicKey(p256.Gx, badY) {
		t.Error("perturbed y accepted")
	}
}

func TestIsValidPublicKeyRejectsOutOfRange(t *testing.T) {
	// Coordinates congruent to an on-curve point mod P must still be
	// rejected when they exceed the field range.
	bigX := new(big.Int).Add(p256.Gx, p256.P)
	if IsValidPublicKey(bigX, p256.Gy) {
		t.Error("x ≥ P accepted")
	}
	bigY := new(big.Int).Add(p256.Gy, p256.P)
	if IsValidPublicKey(p256.Gx, bigY) {
		t.Error("y ≥ P accepted")
	}
	if IsValidPublicKey(p256.P, p256.Gy) {
		t.Error("x = P accepted")
	}
	neg := new(big.Int).Neg(p256.Gy)
	if IsValidPublicKey(p256.Gx, neg) {
		t.Error("negative y accepted")
	}
}

func TestIdentitySentinel(t *testing.T) {
	id := identityPoint()
	if !id.IsIdentity() {
		t.Fatal("identityPoint not identity")
	}
	if (AffinePoint{X: p256.Gx, Y: p256.Gy}).IsIdentity() {
		t.Fatal("generator reported as identity")
	}
	if !jacobianInfinity().isInfinity() {
		t.Fatal("jacobianInfinity not at infinity")
	}
}
