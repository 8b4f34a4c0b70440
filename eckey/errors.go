package eckey

import "errors"

// Sentinel errors - Randomness
var (
	ErrRandomness = errors.New("eckey: entropy source failed")
)

// Sentinel errors - Preconditions
var (
	ErrNoPrivateKey = errors.New("eckey: operation requires a private key")
	ErrNoPublicKey  = errors.New("eckey: operation requires a public key")
)

// Sentinel errors - Input validation
var (
	ErrInvalidDigest = errors.New("eckey: digest must be 32 bytes")
	ErrInvalidScalar = errors.New("eckey: invalid private key scalar")
	ErrInvalidPoint  = errors.New("eckey: invalid public key point")
)

// Sentinel errors - Codec
var (
	ErrDecode = errors.New("eckey: malformed DER private key")
	ErrEncode = errors.New("eckey: DER encoding failed")
)

// Sentinel errors - Verifier
var (
	ErrVerifierClosed = errors.New("eckey: verifier is closed")
)
