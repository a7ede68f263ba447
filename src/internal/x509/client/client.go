// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509client

import (
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/logger"
)

// Reasons passed to the [Recorder].
const (
	ReasonOK              = "ok"
	ReasonNotYetValid     = "not_yet_valid"
	ReasonExpired         = "expired"
	ReasonCACertificate   = "ca_certificate"
	ReasonChainIncomplete = "chain_incomplete"
	ReasonRootNotTrusted  = "root_not_trusted"
	ReasonNoTrustAnchors  = "no_trust_anchors"
	ReasonBadSignature    = "bad_signature"
)

// Recorder receives the verdict of every completed validation.
type Recorder interface {
	RecordValidation(accepted bool, reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordValidation(bool, string) {}

// Option configures a [Validator].
type Option func(*Validator)

// WithClock sets the source of the current time. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithRecorder sets where verdicts are reported. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(v *Validator) {
		if r != nil {
			v.recorder = r
		}
	}
}

// Validator applies the client certificate policy.
//
// Thread Safety: Safe for concurrent use; a Validator holds no mutable state.
type Validator struct {
	now      func() time.Time
	recorder Recorder
}

// New creates a validator using the system clock and no recorder.
func New(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// ValidateClient validates a client certificate with the system clock.
// See [Validator.Validate].
func ValidateClient(leaf *x509.Certificate, chain []*x509.Certificate, anchors x509chain.TrustAnchors, log logger.Logger) (bool, error) {
	return defaultValidator.Validate(leaf, chain, anchors, log)
}

// Verdict is the detailed result of [Validator.Check].
type Verdict struct {
	Accepted   bool
	// Reason is one of the Reason constants.
	Reason     string
	// Diagnostic describes the rejection; it is empty when Accepted.
	Diagnostic string
	// Path is the trust path built for leaf. It is nil when a policy check
	// rejected the leaf before path building.
	Path       []*x509.Certificate
}

// Validate reports whether leaf is an acceptable client credential.
// See [Validator.Check] for the checks applied.
//
// Returns:
//   - bool: Whether the client is accepted
//   - error: [x509certs.ErrInvalidArgument] for a nil leaf, chain, log or
//     chain entry; the verdict is false in that case
func (v *Validator) Validate(leaf *x509.Certificate, chain []*x509.Certificate, anchors x509chain.TrustAnchors, log logger.Logger) (bool, error) {
	verdict, err := v.Check(leaf, chain, anchors, log)
	return verdict.Accepted, err
}

// Check applies the client certificate policy to leaf and returns why it
// was accepted or rejected.
//
// The checks run in order and stop at the first failure: validity window,
// CA flag, then trust path. Every rejection logs one line naming the reason,
// prefixed with a correlation id unique to this call.
//
// Parameters:
//   - leaf: Client certificate
//   - chain: Certificates the client presented after the leaf; may be empty
//   - anchors: Trust policy for the root of the path
//   - log: Destination of rejection reasons
//
// Returns:
//   - Verdict: Decision, reason and built path
//   - error: [x509certs.ErrInvalidArgument] for a nil leaf, chain, log or
//     chain entry; the verdict is a rejection in that case
func (v *Validator) Check(leaf *x509.Certificate, chain []*x509.Certificate, anchors x509chain.TrustAnchors, log logger.Logger) (Verdict, error) {
	switch {
	case leaf == nil:
		return Verdict{}, fmt.Errorf("%w: client certificate is nil", x509certs.ErrInvalidArgument)
	case chain == nil:
		return Verdict{}, fmt.Errorf("%w: client chain is nil", x509certs.ErrInvalidArgument)
	case log == nil:
		return Verdict{}, fmt.Errorf("%w: logger is nil", x509certs.ErrInvalidArgument)
	}
	for i, cert := range chain {
		if cert == nil {
			return Verdict{}, fmt.Errorf("%w: client chain entry %d is nil", x509certs.ErrInvalidArgument, i)
		}
	}

	id := uuid.New()
	reject := func(path []*x509.Certificate, reason, format string, args ...any) (Verdict, error) {
		diagnostic := fmt.Sprintf(format, args...)
		log.Printf("[%s] client certificate %q rejected: %s", id, leaf.Subject.String(), diagnostic)
		v.recorder.RecordValidation(false, reason)
		return Verdict{Reason: reason, Diagnostic: diagnostic, Path: path}, nil
	}

	now := v.now()
	if now.Before(leaf.NotBefore) {
		return reject(nil, ReasonNotYetValid, "not yet valid (valid from %s)", leaf.NotBefore.UTC().Format(time.RFC3339))
	}
	if now.After(leaf.NotAfter) {
		return reject(nil, ReasonExpired, "expired (valid until %s)", leaf.NotAfter.UTC().Format(time.RFC3339))
	}

	if x509certs.IsCA(leaf) {
		return reject(nil, ReasonCACertificate, "CA certificate rejected as client credential")
	}

	outcome, err := x509chain.Validate(leaf, chain, anchors)
	if err != nil {
		return Verdict{}, err
	}
	if !outcome.Valid {
		return reject(outcome.Path, reasonFor(outcome.Err), "%s", outcome.Diagnostic())
	}

	v.recorder.RecordValidation(true, ReasonOK)
	return Verdict{Accepted: true, Reason: ReasonOK, Path: outcome.Path}, nil
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, x509chain.ErrChainIncomplete):
		return ReasonChainIncomplete
	case errors.Is(err, x509chain.ErrRootNotTrusted):
		return ReasonRootNotTrusted
	case errors.Is(err, x509chain.ErrNoTrustAnchors):
		return ReasonNoTrustAnchors
	case errors.Is(err, x509chain.ErrBadSignature):
		return ReasonBadSignature
	default:
		return "unknown"
	}
}
