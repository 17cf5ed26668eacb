// Package sigfootprint measures what replacing ECDSA with a lattice signature
// costs on chain.
//
// The Analyzer signs one message with a fixed secp256k1 key and with a freshly
// generated Dilithium2 key, records the exact serialized sizes of every key and
// signature, and prices the signatures as calldata at 16 gas per byte.
//
// # Quick Start
//
//	footprint, err := sigfootprint.NewAnalyzer().Analyze(message, secretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("bloat %.1fx, extra gas %d\n",
//	    footprint.Comparison.BloatFactor, footprint.Comparison.ExtraGas)
//
// # Signature encoding
//
// ECDSA signatures are measured in the 64-byte compact r||s form by default.
// WithEncoding(EncodingDER) switches to ASN.1 DER, which is 70 to 72 bytes and
// lowers the bloat factor accordingly.
//
// # Schemes
//
// Each scheme is a Signer. AnalyzeWith accepts any pair of Signers, so another
// post-quantum scheme only needs a Signer implementation.
package sigfootprint
