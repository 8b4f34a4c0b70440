package eckey

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// curveOrderHex is the secp256k1 group order n.
const curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func TestNew(t *testing.T) {
	k := New()

	assert.False(t, k.HasPrivate())
	assert.False(t, k.HasPublic())
	assert.Nil(t, k.Private())
	assert.Nil(t, k.Public())
	assert.Nil(t, k.PublicCompressed())
}

func TestGenerate(t *testing.T) {
	t.Run("generates valid keypair", func(t *testing.T) {
		k, err := Generate()
		require.NoError(t, err)
		require.True(t, k.HasPrivate())
		require.True(t, k.HasPublic())

		assert.Len(t, k.Private(), 32)
		assert.Len(t, k.Public(), 65)
		assert.Len(t, k.PublicCompressed(), 33)
		assert.EqualValues(t, 0x04, k.Public()[0])
	})

	t.Run("generates unique keys", func(t *testing.T) {
		k1, err := Generate()
		require.NoError(t, err)

		k2, err := Generate()
		require.NoError(t, err)

		assert.NotEqual(t, k1.Private(), k2.Private())
	})
}

func TestSetPrivate(t *testing.T) {
	t.Run("round-trips a 32-byte scalar", func(t *testing.T) {
		src, err := Generate()
		require.NoError(t, err)

		k := New()
		require.NoError(t, k.SetPrivate(src.Private()))
		assert.Equal(t, src.Private(), k.Private())
	})

	t.Run("left-pads short scalars", func(t *testing.T) {
		k := New()
		require.NoError(t, k.SetPrivate([]byte{0x01, 0x02}))

		want := make([]byte, 32)
		want[30] = 0x01
		want[31] = 0x02
		assert.Equal(t, want, k.Private())
	})

	t.Run("does not derive the public point", func(t *testing.T) {
		k := New()
		require.NoError(t, k.SetPrivate([]byte{0x2a}))

		assert.True(t, k.HasPrivate())
		assert.False(t, k.HasPublic())
		assert.Nil(t, k.Public())
	})

	t.Run("rejects scalars longer than 32 bytes", func(t *testing.T) {
		k := New()
		err := k.SetPrivate(make([]byte, 33))
		require.ErrorIs(t, err, ErrInvalidScalar)
		assert.False(t, k.HasPrivate())
	})

	t.Run("rejects the zero scalar", func(t *testing.T) {
		k := New()
		err := k.SetPrivate(make([]byte, 32))
		require.ErrorIs(t, err, ErrInvalidScalar)
	})

	t.Run("rejects scalars at or above the curve order", func(t *testing.T) {
		order, err := hex.DecodeString(curveOrderHex)
		require.NoError(t, err)

		k := New()
		require.ErrorIs(t, k.SetPrivate(order), ErrInvalidScalar)
	})
}

func TestSetPublic(t *testing.T) {
	src, err := Generate()
	require.NoError(t, err)

	t.Run("accepts an uncompressed point", func(t *testing.T) {
		k := New()
		require.NoError(t, k.SetPublic(src.Public()))
		assert.True(t, k.HasPublic())
		assert.False(t, k.HasPrivate())
		assert.Equal(t, src.Public(), k.Public())
	})

	t.Run("accepts a compressed point", func(t *testing.T) {
		k := New()
		require.NoError(t, k.SetPublic(src.PublicCompressed()))
		assert.Equal(t, src.Public(), k.Public())
	})

	t.Run("rejects bytes that are not a curve point", func(t *testing.T) {
		notAPoint := bytes.Repeat([]byte{0xff}, 65)
		notAPoint[0] = 0x04

		k := New()
		err := k.SetPublic(notAPoint)
		require.ErrorIs(t, err, ErrInvalidPoint)
		assert.False(t, k.HasPublic())
	})

	t.Run("keeps existing point on malformed input", func(t *testing.T) {
		k := New()
		require.NoError(t, k.SetPublic(src.Public()))

		require.Error(t, k.SetPublic([]byte{0x02, 0x01}))
		assert.Equal(t, src.Public(), k.Public())
	})
}

func TestRegenerate(t *testing.T) {
	t.Run("requires a private key", func(t *testing.T) {
		k := New()
		require.ErrorIs(t, k.Regenerate(), ErrNoPrivateKey)
	})

	t.Run("derives the matching public point", func(t *testing.T) {
		src, err := Generate()
		require.NoError(t, err)

		k := New()
		require.NoError(t, k.SetPrivate(src.Private()))
		require.Nil(t, k.Public())

		require.NoError(t, k.Regenerate())
		assert.True(t, k.HasPublic())
		assert.Equal(t, src.Public(), k.Public())
	})

	t.Run("replaces a stale public point", func(t *testing.T) {
		k, err := Generate()
		require.NoError(t, err)

		other, err := Generate()
		require.NoError(t, err)
		require.NoError(t, k.SetPublic(other.Public()))

		require.NoError(t, k.Regenerate())
		assert.NotEqual(t, other.Public(), k.Public())
	})
}

func TestZero(t *testing.T) {
	k, err := Generate()
	require.NoError(t, err)

	k.Zero()
	assert.False(t, k.HasPrivate())
	assert.False(t, k.HasPublic())
	assert.Nil(t, k.Private())

	// Zeroing an already-empty key is a no-op.
	k.Zero()
	assert.False(t, k.HasPrivate())
}
