package keyaudit

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// AddressSize is the length of an account address.
const AddressSize = 20

// Address is a 20-byte account address.
type Address [AddressSize]byte

// AddressFromPublicKey hashes the 64 coordinate bytes of an uncompressed
// public key with Keccak-256 and keeps the low-order 20 bytes.
func AddressFromPublicKey(pub []byte) (Address, error) {
	if len(pub) != PublicKeySize || pub[0] != uncompressedPrefix {
		return Address{}, fmt.Errorf("%w: expected %d-byte uncompressed point", ErrInvalidPublicKey, PublicKeySize)
	}
	if _, err := secp256k1.ParsePubKey(pub); err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return addressFromRaw(pub[1:]), nil
}

// addressFromRaw expects the prefix-stripped 64-byte coordinates.
func addressFromRaw(raw []byte) Address {
	h := sha3.NewLegacyKeccak256()
	h.Write(raw)
	digest := h.Sum(nil)

	var addr Address
	copy(addr[:], digest[len(digest)-AddressSize:])
	return addr
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the lowercase 0x-prefixed hex form.
func (a Address) String() string {
	return hexutil.Encode(a[:])
}

// Checksum returns the EIP-55 mixed-case hex form.
func (a Address) Checksum() string {
	return common.Address(a).Hex()
}
