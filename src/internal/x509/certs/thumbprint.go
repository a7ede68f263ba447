// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"strings"
)

// Thumbprint returns the uppercase hex SHA-256 digest of the certificate's
// DER encoding.
//
// Returns:
//   - string: 64 hex characters
//   - error: [ErrInvalidArgument] if cert is nil
func Thumbprint(cert *x509.Certificate) (string, error) {
	if cert == nil {
		return "", fmt.Errorf("%w: certificate is nil", ErrInvalidArgument)
	}
	sum := sha256.Sum256(cert.Raw)
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}

// IsCA reports whether cert carries a Basic Constraints extension with the CA
// flag set. A missing extension means "not a CA".
func IsCA(cert *x509.Certificate) bool {
	return cert != nil && cert.BasicConstraintsValid && cert.IsCA
}
