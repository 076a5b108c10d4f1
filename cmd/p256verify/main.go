package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/passkeycore/p256/internal/encoding"
	"github.com/passkeycore/p256/pkg/secp256r1"
)

func main() {
	var (
		input       = flag.String("input", "", "Packed verification input: hash|r|s|x|y as 160 hex-encoded bytes")
		hashHex     = flag.String("hash", "", "Message hash (hex)")
		rHex        = flag.String("r", "", "Signature r component (hex)")
		sHex        = flag.String("s", "", "Signature s component (hex)")
		xHex        = flag.String("x", "", "Public key x coordinate (hex, verify mode)")
		yHex        = flag.String("y", "", "Public key y coordinate (hex, verify mode)")
		recoverMode = flag.Bool("recover", false, "Recover the public key instead of verifying")
		recID       = flag.Int("rec-id", 0, "Recovery indicator (0 or 1)")
	)
	flag.Parse()

	engine := secp256r1.NewEngine()

	var h, r, s, x, y *big.Int
	var err error

	if *input != "" {
		h, r, s, x, y, err = encoding.ParseVerifyInputHex(*input)
		if err != nil {
			fail("invalid --input: %v", err)
		}
	} else {
		if *hashHex == "" || *rHex == "" || *sHex == "" {
			fmt.Fprintln(os.Stderr, "Error: --hash, --r and --s are required (or use --input)")
			flag.Usage()
			os.Exit(1)
		}
		h = mustScalar("hash", *hashHex)
		r = mustScalar("r", *rHex)
		s = mustScalar("s", *sHex)
		if !*recoverMode {
			if *xHex == "" || *yHex == "" {
				fail("--x and --y are required in verify mode")
			}
			x = mustScalar("x", *xHex)
			y = mustScalar("y", *yHex)
		}
	}

	if *recoverMode {
		if *recID < 0 || *recID > 1 {
			fail("--rec-id must be 0 or 1")
		}
		pub := engine.Recover(h, byte(*recID), r, s)
		if pub.IsIdentity() {
			fmt.Fprintln(os.Stderr, "Recovery failed: no public key for this signature")
			os.Exit(1)
		}
		fmt.Println("[+] Recovered public key:")
		fmt.Printf("    x: %s\n", encoding.FormatScalar(pub.X))
		fmt.Printf("    y: %s\n", encoding.FormatScalar(pub.Y))
		return
	}

	if engine.Verify(h, r, s, x, y) {
		fmt.Println("[+] Signature is valid")
		return
	}
	fmt.Println("[-] Signature is invalid")
	os.Exit(1)
}

func mustScalar(name, hex string) *big.Int {
	v, err := encoding.ParseScalar(hex)
	if err != nil {
		fail("invalid --%s: %v", name, err)
	}
	return v
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
