package secp256r1

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// Helpers shared by the package tests: fixture loading and reference
// computations against the standard library's P-256.

type verifyVector struct {
	Name  string `json:"name"`
	Hash  string `json:"hash"`
	R     string `json:"r"`
	S     string `json:"s"`
	X     string `json:"x"`
	Y     string `json:"y"`
	Valid bool   `json:"valid"`
}

// loadVerifyVectors reads the signature vectors from fixtures/verify_vectors.json.
func loadVerifyVectors() ([]verifyVector, error) {
	data, err := os.ReadFile("../../fixtures/verify_vectors.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var vectors []verifyVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return vectors, nil
}

// mustHex parses a hex string, handling the 0x prefix.
func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		panic("bad hex in fixture: " + s)
	}
	return v
}

// newTestSignature signs hash with a fresh standard-library P-256 key and
// returns the canonical (low-s) signature together with the public key.
func newTestSignature(hash []byte) (r, s *big.Int, pub *ecdsa.PublicKey, err error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, nil, err
	}
	r, s, err = ecdsa.Sign(rand.Reader, priv, hash)
	if err != nil {
		return nil, nil, nil, err
	}
	return r, NormalizeS(s), &priv.PublicKey, nil
}

// referenceCombinedMult computes u1·P + u2·G through the standard library,
// as an independent slow reference for the windowed multiplier. The
// identity is reported as (0, 0), matching the sentinel convention.
func referenceCombinedMult(px, py, u1, u2 *big.Int) (*big.Int, *big.Int) {
	curve := elliptic.P256()
	switch {
	case u1.Sign() == 0 && u2.Sign() == 0:
		return new(big.Int), new(big.Int)
	case u1.Sign() == 0:
		return curve.ScalarBaseMult(u2.Bytes())
	case u2.Sign() == 0:
		return curve.ScalarMult(px, py, u1.Bytes())
	}
	x1, y1 := curve.ScalarMult(px, py, u1.Bytes())
	x2, y2 := curve.ScalarBaseMult(u2.Bytes())
	return curve.Add(x1, y1, x2, y2)
}

// randomScalar returns a uniformly random scalar in [1, N).
func randomScalar() (*big.Int, error) {
	for {
		k, err := rand.Int(rand.Reader, p256.N)
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
