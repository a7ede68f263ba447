// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"bytes"
	"crypto/x509"
	"fmt"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
)

// Chain holds an ordered list of [X.509] certificates, leaf first, issuers
// following in increasing index. A Chain is never mutated after construction.
//
// [X.509]: https://grokipedia.com/page/X.509
type Chain struct {
	Certs []*x509.Certificate
	*x509certs.Certificate
}

// Assemble builds the chain [leaf] ++ supplied.
//
// The supplied certificates are appended in the order given, without
// reordering or de-duplication. The error result is reserved for contract
// violations; normal operation returns nil.
//
// Parameters:
//   - leaf: End-entity certificate
//   - supplied: Additional certificates presented with the leaf (may be empty)
//
// Returns:
//   - *Chain: Assembled chain
//   - error: [x509certs.ErrInvalidArgument] if leaf is nil
func Assemble(leaf *x509.Certificate, supplied []*x509.Certificate) (*Chain, error) {
	if leaf == nil {
		return nil, fmt.Errorf("%w: leaf certificate is nil", x509certs.ErrInvalidArgument)
	}

	certs := make([]*x509.Certificate, 0, len(supplied)+1)
	certs = append(certs, leaf)
	certs = append(certs, supplied...)

	return &Chain{
		Certs:       certs,
		Certificate: x509certs.New(),
	}, nil
}

// Leaf returns the end-entity certificate.
func (ch *Chain) Leaf() *x509.Certificate { return ch.Certs[0] }

// IsSelfIssued reports whether the certificate's subject equals its issuer.
// The comparison is done on the raw encoded names.
func IsSelfIssued(cert *x509.Certificate) bool {
	return bytes.Equal(cert.RawSubject, cert.RawIssuer)
}

// IsSelfSigned checks if a certificate is self-issued and its signature
// verifies with its own public key.
//
// Basic Constraints are not consulted, so a self-signed end-entity
// certificate qualifies.
func IsSelfSigned(cert *x509.Certificate) bool {
	return IsSelfIssued(cert) && checkSelfSignature(cert) == nil
}

// checkSelfSignature verifies the certificate signature against its own key.
func checkSelfSignature(cert *x509.Certificate) error {
	return cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature)
}

// FilterIntermediates returns the certificates between the leaf and the
// root. A trailing certificate that is not self-issued is an intermediate
// whose issuer is missing, so it is kept.
//
// Returns:
//   - []*x509.Certificate: Slice of intermediate certificates, or nil if none
func (ch *Chain) FilterIntermediates() []*x509.Certificate {
	if len(ch.Certs) <= 1 {
		return nil
	}
	end := len(ch.Certs)
	if IsSelfIssued(ch.Certs[end-1]) {
		end--
	}
	if end <= 1 {
		return nil
	}
	return ch.Certs[1:end]
}

// findIssuersForCertificate returns, in candidate order, every certificate
// that could have issued cert.
//
// A candidate qualifies when its subject matches the issuer of cert, it is not
// already on path, and its key verifies the signature of cert. Copies of an
// already qualifying candidate are skipped. When at least one candidate
// matched by name but none verified, the last signature error is returned so
// callers can tell a broken link from a missing one.
//
// Parameters:
//   - cert: Certificate to find the issuers for
//   - candidates: Pool to search
//   - path: Certificates already selected; they are never selected again
//
// Returns:
//   - []*x509.Certificate: Qualifying issuers, empty if none
//   - error: Signature error of a name-matching candidate, if none qualified
func findIssuersForCertificate(cert *x509.Certificate, candidates, path []*x509.Certificate) ([]*x509.Certificate, error) {
	var (
		issuers []*x509.Certificate
		sigErr  error
	)
	for _, potentialIssuer := range candidates {
		if !bytes.Equal(potentialIssuer.RawSubject, cert.RawIssuer) {
			continue
		}
		if onPath(potentialIssuer, path) || onPath(potentialIssuer, issuers) {
			continue
		}
		if err := cert.CheckSignatureFrom(potentialIssuer); err != nil {
			sigErr = err
			continue
		}
		issuers = append(issuers, potentialIssuer)
	}
	if len(issuers) > 0 {
		return issuers, nil
	}
	return nil, sigErr
}

func onPath(cert *x509.Certificate, path []*x509.Certificate) bool {
	for _, p := range path {
		if p == cert || p.Equal(cert) {
			return true
		}
	}
	return false
}

// subjectName returns a human-readable name for a certificate.
func subjectName(cert *x509.Certificate) string {
	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName
	}
	return cert.Subject.String()
}
