// Package eckey manages secp256k1 key pairs and performs ECDSA signing
// and verification over 32-byte digests.
//
// A Key may hold private material, public material, or both. The low-level
// accessors deliberately do not keep the two halves in sync: SetPrivate
// stores a raw scalar without deriving the public point, and Regenerate
// restores the invariant afterwards. Keys round-trip through the standard
// RFC 5915 DER encoding via ToDER and FromDER.
//
// Signatures are produced with deterministic (RFC 6979) nonces and exchanged
// as DER-encoded (r, s) pairs. Verification is a total function over
// attacker-controlled signature bytes: malformed DER yields the
// VerifyIndeterminate outcome rather than an error, preserving the three-way
// result of the underlying primitive.
//
// A Verifier offloads signature verification to a background worker pool for
// callers that must not stall on the computation; every other operation runs
// synchronously on the caller's goroutine.
package eckey
