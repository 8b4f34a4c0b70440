package eckey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// DigestSize is the required length of a digest passed to Sign and Verify.
const DigestSize = 32

// VerifyResult is the three-way outcome of signature verification. The
// values mirror the 1/0/-1 convention of the underlying ECDSA primitive so
// "signature wrong" stays distinguishable from "signature malformed".
type VerifyResult int

const (
	// VerifyIndeterminate means verification could not complete, typically
	// because the signature bytes are not valid DER.
	VerifyIndeterminate VerifyResult = -1

	// VerifyInvalid means the signature is well-formed but does not match
	// the digest and public key.
	VerifyInvalid VerifyResult = 0

	// VerifyValid means the signature matches the digest and public key.
	VerifyValid VerifyResult = 1
)

// String returns a human-readable name for the result.
func (r VerifyResult) String() string {
	switch r {
	case VerifyValid:
		return "valid"
	case VerifyInvalid:
		return "invalid"
	case VerifyIndeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("VerifyResult(%d)", int(r))
	}
}

// Sign produces a DER-encoded ECDSA signature over a 32-byte digest using
// the private key. Nonces are deterministic per RFC 6979, so signing the
// same digest with the same key always yields the same signature.
func (k *Key) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, fmt.Errorf("%w: sign needs a private key", ErrNoPrivateKey)
	}
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDigest, len(digest))
	}

	sig := ecdsa.Sign(k.priv, digest)
	return sig.Serialize(), nil
}

// Verify checks a DER-encoded ECDSA signature over a 32-byte digest against
// the public key. It is total over attacker-controlled signature bytes:
// malformed DER yields VerifyIndeterminate, never an error. An error is
// returned only for a missing public key or a digest of the wrong length.
func (k *Key) Verify(digest, sig []byte) (VerifyResult, error) {
	if k.pub == nil {
		return VerifyIndeterminate, fmt.Errorf("%w: verify needs a public key", ErrNoPublicKey)
	}
	if len(digest) != DigestSize {
		return VerifyIndeterminate, fmt.Errorf("%w: got %d", ErrInvalidDigest, len(digest))
	}

	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return VerifyIndeterminate, nil
	}

	if parsed.Verify(digest, k.pub) {
		return VerifyValid, nil
	}
	return VerifyInvalid, nil
}
