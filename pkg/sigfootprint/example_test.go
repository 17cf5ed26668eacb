package sigfootprint_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/mahdiidarabi/pqc-audit/pkg/sigfootprint"
)

func ExampleAnalyzer_Analyze() {
	message := []byte("transfer(0xDEAd...BEEF, 50 ETH)")
	secret := bytes.Repeat([]byte{0x01}, 32)

	fp, err := sigfootprint.NewAnalyzer().Analyze(message, secret)
	if err != nil {
		log.Fatal(err)
	}

	for _, g := range []sigfootprint.GasEstimate{fp.ECDSAGas, fp.DilithiumGas} {
		fmt.Printf("%s: %d bytes, %d gas\n", g.Scheme, g.ByteCount, g.TotalGas)
	}
	fmt.Printf("bloat %.1fx, extra gas %d, exceeds baseline: %t\n",
		fp.Comparison.BloatFactor, fp.Comparison.ExtraGas, fp.Comparison.ExceedsBaseline)
	// Output:
	// ECDSA-secp256k1: 64 bytes, 1024 gas
	// Dilithium2: 2420 bytes, 38720 gas
	// bloat 37.8x, extra gas 37696, exceeds baseline: true
}

func ExampleCompare() {
	ecdsa := sigfootprint.GasEstimate{Scheme: sigfootprint.SchemeECDSASecp256k1, ByteCount: 0}
	dilithium := sigfootprint.GasEstimate{Scheme: sigfootprint.SchemeDilithium2, ByteCount: 2420, TotalGas: 38720}

	_, err := sigfootprint.Compare(ecdsa, dilithium)
	fmt.Println(err)
	// Output:
	// degenerate input: ECDSA-secp256k1 signature has 0 bytes
}
