package eckey

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Required for hash160 address derivation
	"golang.org/x/crypto/sha3"
)

// Hash160 computes RIPEMD160(SHA256(b)), the hash a Bitcoin-style address
// is built from.
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	rip := ripemd160.New()
	rip.Write(sha[:])
	return rip.Sum(nil)
}

// Address returns the 20-byte hash160 of the uncompressed public key, or
// nil if no public key is set.
func (k *Key) Address() []byte {
	if k.pub == nil {
		return nil
	}
	return Hash160(k.pub.SerializeUncompressed())
}

// EthereumAddress returns the EIP-55 checksummed Ethereum address derived
// from the public key, or "" if no public key is set.
// Formula: Keccak256(uncompressed_pubkey[1:])[12:32].
func (k *Key) EthereumAddress() string {
	if k.pub == nil {
		return ""
	}
	uncompressed := k.pub.SerializeUncompressed()
	hash := hashKeccak256(uncompressed[1:])
	return checksumAddress(hash[12:])
}

// hashKeccak256 computes Keccak-256 (Ethereum).
func hashKeccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// checksumAddress formats a 20-byte address as an EIP-55 checksummed hex
// string: a hex digit is uppercased when the corresponding nibble of the
// Keccak-256 hash of the lowercase address is >= 8.
func checksumAddress(addr []byte) string {
	if len(addr) != 20 {
		return ""
	}

	hexAddr := hex.EncodeToString(addr)
	hash := hashKeccak256([]byte(hexAddr))

	result := make([]byte, 40)
	for i := 0; i < 40; i++ {
		hashNibble := hash[i/2]
		if i%2 == 0 {
			hashNibble = hashNibble >> 4
		} else {
			hashNibble = hashNibble & 0x0f
		}

		if hashNibble >= 8 && hexAddr[i] >= 'a' && hexAddr[i] <= 'f' {
			result[i] = hexAddr[i] - 32
		} else {
			result[i] = hexAddr[i]
		}
	}

	return "0x" + string(result)
}
