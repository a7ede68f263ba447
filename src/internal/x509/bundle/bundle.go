// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/validate"
	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
)

// PrivateKeyTypeKey marks a private key delivered inline as PEM.
const PrivateKeyTypeKey = "key"

// TrustBundle wraps zero or more concatenated PEM certificates.
type TrustBundle struct {
	Certificate string `json:"certificate" yaml:"certificate"`
}

// PrivateKey is the key half of an [IssuedCertificateResponse].
// Type may be omitted; when present it must be [PrivateKeyTypeKey].
type PrivateKey struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=key"`
	Bytes string `json:"bytes" yaml:"bytes" validate:"required"`
}

// IssuedCertificateResponse is an issued identity: Certificate holds the
// leaf followed by its chain, PrivateKey the leaf's key.
type IssuedCertificateResponse struct {
	Certificate string     `json:"certificate" yaml:"certificate" validate:"required,pem_certificate"`
	Expiration  time.Time  `json:"expiration" yaml:"expiration"`
	PrivateKey  PrivateKey `json:"privateKey" yaml:"privateKey"`
}

// ParseTrustBundle decodes every certificate in the bundle.
//
// Blocks that do not decode are skipped, so blank or garbage content yields
// an empty slice rather than an error.
//
// Returns:
//   - []*x509.Certificate: Decoded certificates in bundle order, never nil
//   - error: [x509certs.ErrInvalidArgument] for a nil bundle
func ParseTrustBundle(bundle *TrustBundle) ([]*x509.Certificate, error) {
	if bundle == nil {
		return nil, fmt.Errorf("%w: trust bundle is nil", x509certs.ErrInvalidArgument)
	}
	return x509certs.ParseCertificates(bundle.Certificate), nil
}

// ParseIssuedCertificate decodes an issued identity into a [x509certs.Credential]
// with the private key attached to the leaf and the expiration copied over.
//
// Returns:
//   - *x509certs.Credential: Leaf, key, chain and expiration
//   - error: [x509certs.ErrInvalidArgument] for a nil response;
//     [x509certs.ErrInvalidState] when the payload is incomplete or any
//     certificate or the key fails to decode
func ParseIssuedCertificate(resp *IssuedCertificateResponse) (*x509certs.Credential, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: issued certificate response is nil", x509certs.ErrInvalidArgument)
	}
	if err := validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", x509certs.ErrInvalidState, err)
	}

	cred, err := x509certs.ParseCertificateAndKey(resp.Certificate, resp.PrivateKey.Bytes)
	if err != nil {
		return nil, err
	}
	cred.Expiration = resp.Expiration
	return cred, nil
}

// DecodeTrustBundle unmarshals a JSON trust bundle. data is not retained.
func DecodeTrustBundle(data []byte) (*TrustBundle, error) {
	var bundle TrustBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: trust bundle: %v", x509certs.ErrInvalidArgument, err)
	}
	return &bundle, nil
}

// DecodeIssuedCertificateResponse unmarshals a JSON issued-certificate
// response. data is not retained.
//
// Malformed JSON is the runtime's own identity failing to arrive intact, so
// it is reported as [x509certs.ErrInvalidState].
func DecodeIssuedCertificateResponse(data []byte) (*IssuedCertificateResponse, error) {
	var resp IssuedCertificateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: issued certificate response: %v", x509certs.ErrInvalidState, err)
	}
	return &resp, nil
}
