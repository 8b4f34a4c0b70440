package eckey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash160(t *testing.T) {
	h := Hash160([]byte("test"))
	assert.Len(t, h, 20)

	// Deterministic over the same input.
	assert.Equal(t, h, Hash160([]byte("test")))
	assert.NotEqual(t, h, Hash160([]byte("other")))
}

func TestAddress(t *testing.T) {
	t.Run("nil without a public key", func(t *testing.T) {
		assert.Nil(t, New().Address())
	})

	t.Run("matches hash160 of the uncompressed point", func(t *testing.T) {
		k, err := Generate()
		require.NoError(t, err)

		assert.Equal(t, Hash160(k.Public()), k.Address())
	})
}

func TestEthereumAddress(t *testing.T) {
	t.Run("empty without a public key", func(t *testing.T) {
		assert.Empty(t, New().EthereumAddress())
	})

	t.Run("well-formed for a generated key", func(t *testing.T) {
		k, err := Generate()
		require.NoError(t, err)

		addr := k.EthereumAddress()
		require.Len(t, addr, 42)
		assert.Equal(t, "0x", addr[:2])
	})
}

func TestChecksumAddress(t *testing.T) {
	// EIP-55 reference vectors.
	tests := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}

	for _, want := range tests {
		raw, err := hex.DecodeString(want[2:])
		require.NoError(t, err)
		assert.Equal(t, want, checksumAddress(raw))
	}

	assert.Empty(t, checksumAddress([]byte{0x01}))
}
