// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/cloudflare/cfssl/helpers"
)

// Credential is a leaf certificate with its private key attached, plus the
// chain that was delivered alongside it (leaf excluded, issuer direction).
type Credential struct {
	Leaf       *x509.Certificate
	PrivateKey crypto.Signer
	Chain      []*x509.Certificate
	Expiration time.Time // zero when the issuer did not state one
}

// HasPrivateKey reports whether a private key is attached to the leaf.
func (c *Credential) HasPrivateKey() bool { return c != nil && c.PrivateKey != nil }

// Certificates returns the leaf followed by the chain.
func (c *Credential) Certificates() []*x509.Certificate {
	certs := make([]*x509.Certificate, 0, len(c.Chain)+1)
	certs = append(certs, c.Leaf)
	return append(certs, c.Chain...)
}

// ParseCertificateAndKey decodes an issued identity: certPEM holds the leaf
// followed by its chain, keyPEM the leaf's private key.
//
// Unlike [ParseCertificates], decoding here is strict. Any block that fails to
// decode, a missing certificate, an unreadable key, or a key that does not
// belong to the leaf all fail with [ErrInvalidState].
//
// Parameters:
//   - certPEM: One or more PEM certificate blocks, leaf first
//   - keyPEM: PEM encoded private key (PKCS#1, PKCS#8 or SEC 1)
//
// Returns:
//   - *Credential: Leaf with attached key and the remaining chain
//   - error: [ErrInvalidState] on any decoding failure
func ParseCertificateAndKey(certPEM, keyPEM string) (*Credential, error) {
	certs, err := decodeStrict(certPEM)
	if err != nil {
		return nil, err
	}

	key, err := helpers.ParsePrivateKeyPEM([]byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %v", ErrInvalidState, err)
	}

	leaf := certs[0]
	if pub, ok := key.Public().(interface{ Equal(crypto.PublicKey) bool }); !ok || !pub.Equal(leaf.PublicKey) {
		return nil, fmt.Errorf("%w: private key does not match certificate %q", ErrInvalidState, leaf.Subject.CommonName)
	}

	return &Credential{
		Leaf:       leaf,
		PrivateKey: key,
		Chain:      certs[1:],
	}, nil
}

// decodeStrict decodes every certificate block in text and fails on the first
// block that does not decode.
func decodeStrict(text string) ([]*x509.Certificate, error) {
	blocks, err := SplitPEMBlocks(text)
	if err != nil || len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no certificate found", ErrInvalidState)
	}

	decoder := New()
	certs := make([]*x509.Certificate, 0, len(blocks))
	for i, block := range blocks {
		cert, err := decoder.Decode([]byte(block))
		if err != nil {
			return nil, fmt.Errorf("%w: certificate block %d: %v", ErrInvalidState, i, err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}
