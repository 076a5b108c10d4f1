// Package encoding provides the canonical 256-bit value encodings shared by
// the command-line tools: 0x-prefixed hex scalars and the packed
// hash|r|s|x|y verification input layout.
package encoding

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// VerifyInputLen is the packed verification input size:
// hash(32) | r(32) | s(32) | x(32) | y(32).
const VerifyInputLen = 160

// ParseScalar decodes a hex string (0x prefix optional, odd lengths
// tolerated) into a 256-bit unsigned integer.
func ParseScalar(in string) (*big.Int, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty scalar")
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex scalar %q: %w", in, err)
	}
	if len(b) > 32 {
		return nil, fmt.Errorf("scalar %q exceeds 256 bits", in)
	}
	return new(big.Int).SetBytes(b), nil
}

// FormatScalar encodes a 256-bit integer as 0x-prefixed, 32-byte-padded hex.
func FormatScalar(v *big.Int) string {
	var buf [32]byte
	v.FillBytes(buf[:])
	return hexutil.Encode(buf[:])
}

// ParseVerifyInput splits a packed 160-byte verification input into its
// hash, signature and public key components.
func ParseVerifyInput(data []byte) (h, r, s, x, y *big.Int, err error) {
	if len(data) != VerifyInputLen {
		return nil, nil, nil, nil, nil, fmt.Errorf("input must be %d bytes, got %d", VerifyInputLen, len(data))
	}
	h = new(big.Int).SetBytes(data[0:32])
	r = new(big.Int).SetBytes(data[32:64])
	s = new(big.Int).SetBytes(data[64:96])
	x = new(big.Int).SetBytes(data[96:128])
	y = new(big.Int).SetBytes(data[128:160])
	return h, r, s, x, y, nil
}

// ParseVerifyInputHex decodes a hex string into a packed verification input
// and splits it.
func ParseVerifyInputHex(in string) (h, r, s, x, y *big.Int, err error) {
	if !strings.HasPrefix(in, "0x") && !strings.HasPrefix(in, "0X") {
		in = "0x" + in
	}
	data, err := hexutil.Decode(in)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return ParseVerifyInput(data)
}
