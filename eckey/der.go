package eckey

import (
	"encoding/asn1"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// oidNamedCurveSecp256k1 is the ASN.1 object identifier for secp256k1
// (SEC 2, section A.2).
var oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

// ecPrivateKey is the RFC 5915 ECPrivateKey structure. The curve OID and the
// embedded public point are optional in the wire format; ToDER always emits
// both, and FromDER requires the OID so a key can never silently decode
// against the wrong curve.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// ecPrivateKeyVersion is the only version defined by RFC 5915.
const ecPrivateKeyVersion = 1

// ToDER encodes the key as an RFC 5915 DER EC private key, embedding the
// curve OID, the 32-byte scalar, and the uncompressed public point. It
// returns (nil, nil) unless both private and public material are present.
// The encoding is deterministic: identical key material always yields
// identical bytes.
func (k *Key) ToDER() ([]byte, error) {
	if k.priv == nil || k.pub == nil {
		return nil, nil
	}

	pub := k.pub.SerializeUncompressed()
	der, err := asn1.Marshal(ecPrivateKey{
		Version:       ecPrivateKeyVersion,
		PrivateKey:    k.priv.Serialize(),
		NamedCurveOID: oidNamedCurveSecp256k1,
		PublicKey:     asn1.BitString{Bytes: pub, BitLength: 8 * len(pub)},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return der, nil
}

// FromDER decodes an RFC 5915 DER EC private key for secp256k1 into a new
// Key holding both the private scalar and the public point. Malformed DER,
// a wrong or missing curve OID, an out-of-range scalar, trailing bytes, or
// an embedded point that does not match the scalar all fail with ErrDecode;
// no partially-constructed key is ever returned.
func FromDER(der []byte) (*Key, error) {
	var ec ecPrivateKey
	rest, err := asn1.Unmarshal(der, &ec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing bytes after key structure", ErrDecode)
	}
	if ec.Version != ecPrivateKeyVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDecode, ec.Version)
	}
	if !ec.NamedCurveOID.Equal(oidNamedCurveSecp256k1) {
		return nil, fmt.Errorf("%w: key is not for the secp256k1 curve", ErrDecode)
	}
	if len(ec.PrivateKey) == 0 || len(ec.PrivateKey) > scalarSize {
		return nil, fmt.Errorf("%w: scalar is %d bytes", ErrDecode, len(ec.PrivateKey))
	}

	padded := make([]byte, scalarSize)
	copy(padded[scalarSize-len(ec.PrivateKey):], ec.PrivateKey)
	defer secureZero(padded)

	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(padded); overflow {
		return nil, fmt.Errorf("%w: scalar overflows the curve order", ErrDecode)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrDecode)
	}

	priv, derived := btcec.PrivKeyFromBytes(padded)

	// Cross-check an embedded point against the derived one rather than
	// trusting it. A mismatch means the structure is corrupt.
	if ec.PublicKey.BitLength > 0 {
		embedded, err := btcec.ParsePubKey(ec.PublicKey.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: embedded public point: %v", ErrDecode, err)
		}
		if !embedded.IsEqual(derived) {
			return nil, fmt.Errorf("%w: embedded public point does not match scalar", ErrDecode)
		}
	}

	return &Key{priv: priv, pub: derived}, nil
}
