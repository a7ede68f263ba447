// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
	"errors"
	"fmt"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
)

var (
	// ErrChainIncomplete indicates that a certificate on the path is not
	// self-issued and its issuer was not among the supplied certificates.
	ErrChainIncomplete = errors.New("x509chain: chain incomplete")

	// ErrRootNotTrusted indicates that the path was built but its root is not
	// one of the pinned trust anchors.
	ErrRootNotTrusted = errors.New("x509chain: root not trusted")

	// ErrNoTrustAnchors indicates a pinned trust set with no certificates.
	ErrNoTrustAnchors = errors.New("x509chain: no trust anchors pinned")

	// ErrBadSignature indicates that a certificate whose name links it into the
	// path does not verify the signature it is supposed to have made.
	ErrBadSignature = errors.New("x509chain: signature verification failed")
)

// Outcome is the verdict of a trust validation.
//
// Err is nil iff Valid is true; it wraps one of the package's sentinel errors
// and serves as the diagnostic. Path holds the certificates selected while
// building the path, leaf first, even when validation failed.
type Outcome struct {
	Valid bool
	Err   error
	Path  []*x509.Certificate
}

// Diagnostic returns a human-readable failure reason, or "" on success.
func (o Outcome) Diagnostic() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func fail(path []*x509.Certificate, err error) Outcome {
	return Outcome{Valid: false, Err: err, Path: path}
}

// Validate decides whether a trust path exists from leaf to an acceptable root.
//
// Starting at leaf, it repeatedly selects from supplied the certificate that
// issued the current tail (subject/issuer match plus signature check) until
// the tail is self-issued. The final certificate is the root candidate, which
// is the leaf itself for a self-issued leaf. With [DefaultTrust] a fully built
// path is trusted; with [PinnedTrust] the root candidate must also be
// identical to a pinned certificate.
//
// When several supplied certificates could have issued the tail, such as a
// cross-signed copy of an intermediate next to its self-signed form, each is
// tried in turn. The verdict therefore does not depend on the order of
// supplied; only the reported path does.
//
// Peer-controlled problems are reported in the returned [Outcome], never as an
// error.
//
// Parameters:
//   - leaf: End-entity certificate
//   - supplied: Certificates presented with the leaf; must not be nil, may be empty
//   - anchors: Trust policy for the root candidate
//
// Returns:
//   - Outcome: Verdict, diagnostic and built path
//   - error: [x509certs.ErrInvalidArgument] for a nil leaf, a nil supplied
//     slice, or a nil entry in supplied
//
// Thread Safety: Safe for concurrent use.
func Validate(leaf *x509.Certificate, supplied []*x509.Certificate, anchors TrustAnchors) (Outcome, error) {
	if leaf == nil {
		return Outcome{}, fmt.Errorf("%w: leaf certificate is nil", x509certs.ErrInvalidArgument)
	}
	if supplied == nil {
		return Outcome{}, fmt.Errorf("%w: supplied chain is nil", x509certs.ErrInvalidArgument)
	}
	for i, cert := range supplied {
		if cert == nil {
			return Outcome{}, fmt.Errorf("%w: supplied chain entry %d is nil", x509certs.ErrInvalidArgument, i)
		}
	}

	return buildPath(leaf, supplied, anchors), nil
}

// pathSearch carries the state of a depth-first path search. It remembers
// the most informative failure: a fully built path rejected by the anchors
// outranks a dead end, otherwise the first failure found is kept.
type pathSearch struct {
	supplied []*x509.Certificate
	anchors  TrustAnchors

	failPath  []*x509.Certificate
	failErr   error
	failBuilt bool
}

// buildPath searches from leaf towards a self-issued root using only
// supplied. Every issuer that links by name and signature is tried in the
// given order, and the first path whose root the anchors accept wins. Issuers
// already on the path are never selected again, so every branch ends after at
// most len(supplied) hops.
func buildPath(leaf *x509.Certificate, supplied []*x509.Certificate, anchors TrustAnchors) Outcome {
	s := &pathSearch{supplied: supplied, anchors: anchors}
	if path, ok := s.extend([]*x509.Certificate{leaf}); ok {
		return Outcome{Valid: true, Path: path}
	}
	return fail(s.failPath, s.failErr)
}

func (s *pathSearch) extend(path []*x509.Certificate) ([]*x509.Certificate, bool) {
	current := path[len(path)-1]

	if IsSelfIssued(current) {
		if err := checkSelfSignature(current); err != nil {
			s.reject(path, fmt.Errorf("%w: self-issued %q: %v", ErrBadSignature, subjectName(current), err), false)
			return nil, false
		}
		if err := s.anchors.accept(current); err != nil {
			s.reject(path, err, true)
			return nil, false
		}
		return path, true
	}

	issuers, sigErr := findIssuersForCertificate(current, s.supplied, path)
	if len(issuers) == 0 {
		if sigErr != nil {
			s.reject(path, fmt.Errorf("%w: %q: %v", ErrBadSignature, subjectName(current), sigErr), false)
		} else {
			s.reject(path, fmt.Errorf("%w: no issuer found for %q", ErrChainIncomplete, subjectName(current)), false)
		}
		return nil, false
	}

	for _, issuer := range issuers {
		// Full slice expression so sibling branches never share a backing array.
		next := append(path[:len(path):len(path)], issuer)
		if built, ok := s.extend(next); ok {
			return built, true
		}
	}
	return nil, false
}

func (s *pathSearch) reject(path []*x509.Certificate, err error, built bool) {
	if s.failErr != nil && (s.failBuilt || !built) {
		return
	}
	s.failPath, s.failErr, s.failBuilt = path, err, built
}
