package eckey

import (
	"fmt"
	"runtime"

	"github.com/btcsuite/btcd/btcec/v2"
)

// scalarSize is the fixed width of a serialized secp256k1 private key.
const scalarSize = 32

// Key is a secp256k1 key pair. Either half may be absent: a key loaded for
// verification carries only the public point, and a key populated through
// SetPrivate carries only the scalar until Regenerate derives the point.
//
// A Key is not safe for concurrent mutation. A key handed to a Verifier must
// not be mutated until the continuation has fired.
type Key struct {
	priv *btcec.PrivateKey
	pub  *btcec.PublicKey
}

// New returns an empty key bound to the secp256k1 curve.
func New() *Key {
	return &Key{}
}

// Generate creates a key with a fresh uniformly random private scalar and
// its derived public point. Failure of the entropy source is fatal and is
// never retried with weaker randomness.
func Generate() (*Key, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return &Key{priv: priv, pub: priv.PubKey()}, nil
}

// HasPrivate reports whether the key holds a private scalar.
func (k *Key) HasPrivate() bool {
	return k.priv != nil
}

// HasPublic reports whether the key holds a public point.
func (k *Key) HasPublic() bool {
	return k.pub != nil
}

// Private returns the private scalar as a fixed 32-byte big-endian value,
// left-padded with zeros. It returns nil if no private key is set.
func (k *Key) Private() []byte {
	if k.priv == nil {
		return nil
	}
	return k.priv.Serialize()
}

// SetPrivate parses b as a big-endian unsigned scalar and stores it as the
// private key. The public point is NOT recomputed; callers that need the
// matching point must call Regenerate or SetPublic afterwards. This is a
// low-level primitive, not a full key import.
func (k *Key) SetPrivate(b []byte) error {
	if len(b) > scalarSize {
		return fmt.Errorf("%w: scalar is %d bytes, max %d", ErrInvalidScalar, len(b), scalarSize)
	}

	padded := make([]byte, scalarSize)
	copy(padded[scalarSize-len(b):], b)
	defer secureZero(padded)

	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(padded); overflow {
		return fmt.Errorf("%w: scalar overflows the curve order", ErrInvalidScalar)
	}
	if s.IsZero() {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidScalar)
	}

	priv, _ := btcec.PrivKeyFromBytes(padded)
	k.priv = priv
	return nil
}

// Public returns the public point in uncompressed SEC1 form (65 bytes).
// It returns nil if no public key is set.
func (k *Key) Public() []byte {
	if k.pub == nil {
		return nil
	}
	return k.pub.SerializeUncompressed()
}

// PublicCompressed returns the public point in compressed SEC1 form
// (33 bytes). It returns nil if no public key is set.
func (k *Key) PublicCompressed() []byte {
	if k.pub == nil {
		return nil
	}
	return k.pub.SerializeCompressed()
}

// SetPublic parses b as a SEC1-encoded point (compressed or uncompressed)
// and stores it as the public key. The key is left unchanged if b does not
// decode to a point on the curve.
func (k *Key) SetPublic(b []byte) error {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	k.pub = pub
	return nil
}

// Regenerate derives the public point from the stored private scalar,
// replacing any public key currently set. It restores the scalar/point
// invariant after a raw SetPrivate.
func (k *Key) Regenerate() error {
	if k.priv == nil {
		return fmt.Errorf("%w: regeneration requires a private key", ErrNoPrivateKey)
	}
	pub := k.priv.PubKey()
	k.pub = pub
	return nil
}

// Zero scrubs the private scalar from memory and clears both halves of the
// key. The key remains usable as an empty key afterwards.
func (k *Key) Zero() {
	if k.priv != nil {
		k.priv.Zero()
	}
	k.priv = nil
	k.pub = nil
}

// secureZero wipes sensitive data from memory.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
