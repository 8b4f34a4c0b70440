package eckey

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// verifyRequest carries one offloaded verification. It holds the key and
// both input buffers so they stay reachable for the full span of the
// background computation, independent of the caller's own references.
type verifyRequest struct {
	id     uuid.UUID
	key    *Key
	digest []byte
	sig    []byte
	done   func(VerifyResult, error)
}

// Verifier runs signature verification on a background worker pool so the
// calling goroutine is not stalled during the computation. Only verification
// is offloaded; signing and every other key operation stay synchronous.
//
// Each queued request's continuation is invoked exactly once, strictly after
// the verification finishes. Queued work always runs to completion; there is
// no cancellation.
type Verifier struct {
	queue   chan *verifyRequest
	logger  hclog.Logger
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	workers int
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithWorkers sets the number of pool workers. Values below 1 are ignored.
func WithWorkers(n int) VerifierOption {
	return func(v *Verifier) {
		if n > 0 {
			v.workers = n
		}
	}
}

// WithLogger sets the logger used for per-request debug logging. Digest and
// signature bytes are never logged.
func WithLogger(l hclog.Logger) VerifierOption {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewVerifier creates a Verifier and starts its worker pool. The default
// pool size is the number of CPUs.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{
		workers: runtime.NumCPU(),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.queue = make(chan *verifyRequest, v.workers*4)
	for i := 0; i < v.workers; i++ {
		v.wg.Add(1)
		go v.worker()
	}
	return v
}

// VerifyAsync queues verification of a DER-encoded signature over a 32-byte
// digest and returns immediately. Precondition failures (missing public key,
// wrong digest length, closed verifier) are reported synchronously and
// nothing is queued; once queued, the three-way outcome is delivered
// exclusively through done.
//
// The key must not be mutated between the call and the continuation firing.
func (v *Verifier) VerifyAsync(key *Key, digest, sig []byte, done func(VerifyResult, error)) error {
	if key == nil || !key.HasPublic() {
		return ErrNoPublicKey
	}
	if len(digest) != DigestSize {
		return ErrInvalidDigest
	}

	req := &verifyRequest{
		id:     uuid.New(),
		key:    key,
		digest: digest,
		sig:    sig,
		done:   done,
	}

	// The read lock is shared between submitters, so a send blocked on a
	// full queue holds up only Close, never other VerifyAsync calls.
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.closed {
		return ErrVerifierClosed
	}
	v.queue <- req
	v.logger.Debug("verify queued", "request_id", req.id)
	return nil
}

// Close shuts the verifier down. Requests already queued are verified and
// their continuations invoked before Close returns; later VerifyAsync calls
// fail with ErrVerifierClosed.
func (v *Verifier) Close() {
	// Taking the write lock waits for every in-flight send to finish, so
	// the queue is never closed under a submitter.
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	close(v.queue)
	v.mu.Unlock()

	v.wg.Wait()
}

// worker drains the queue, verifying each request and delivering its
// outcome through the continuation.
func (v *Verifier) worker() {
	defer v.wg.Done()
	for req := range v.queue {
		result, err := req.key.Verify(req.digest, req.sig)
		v.logger.Debug("verify complete", "request_id", req.id, "result", result.String())

		// The request keeps the key and both buffers reachable until the
		// continuation has returned.
		req.done(result, err)
	}
}
