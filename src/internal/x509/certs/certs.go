// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidArgument indicates a caller contract violation, such as a nil
	// certificate or an empty input where one is required. It is never used to
	// report peer-controlled data problems.
	ErrInvalidArgument = errors.New("x509certs: invalid argument")

	// ErrInvalidState indicates that an issued identity payload (certificate or
	// private key) could not be decoded. A runtime cannot present a credential
	// without it, so callers should treat it as fatal.
	ErrInvalidState = errors.New("x509certs: invalid state")

	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// certBlockType is the PEM type carried by every certificate block.
const certBlockType = "CERTIFICATE"

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// A Certificate holds no mutable state after [New] returns and is safe for
// concurrent use.
//
// [X.509]: https://grokipedia.com/page/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: certBlockType,
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from data.
//
// data may be a PEM block or raw DER. When the DER payload is not a bare
// certificate, it is tried as a PKCS7 bundle and the first certificate inside
// is returned.
//
// Parameters:
//   - data: PEM or DER encoded certificate
//
// Returns:
//   - *x509.Certificate: Decoded certificate
//   - error: [ErrInvalidBlockType], [ErrParseCertificate] or [ErrNoCertificatesInPKCS]
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeBlocks decodes each PEM block independently and returns the
// certificates that decoded successfully, in input order.
//
// A block that fails to decode is dropped; it never aborts the rest of the
// batch. An empty or nil input yields an empty result.
//
// Thread Safety: Safe for concurrent use.
func (c *Certificate) DecodeBlocks(blocks []string) []*x509.Certificate {
	certs := make([]*x509.Certificate, 0, len(blocks))
	for _, block := range blocks {
		cert, err := c.Decode([]byte(block))
		if err != nil {
			continue
		}
		certs = append(certs, cert)
	}
	return certs
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}
