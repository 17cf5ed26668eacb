// Package keyaudit derives a secp256k1 keypair and its account address and
// classifies which of the resulting artifacts are safe to publish.
//
// An account address is the last 20 bytes of Keccak-256 over the 64 raw
// coordinate bytes of the uncompressed public key. Publishing the address alone
// reveals nothing an attacker running Shor's algorithm can use; publishing the
// public key (which every signed transaction does) hands over the input needed to
// recover the secret key.
//
// # Quick Start
//
//	d, err := keyaudit.Derive()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, a := range d.Artifacts() {
//	    fmt.Printf("%-10s %-22s %x\n", a.Name, a.Exposure, a.Bytes)
//	}
//
// Callers that need reproducible keys can supply their own entropy with
// DeriveFrom, or start from an existing secret with KeyPairFromSecret.
package keyaudit
