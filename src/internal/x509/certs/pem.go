// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"fmt"
	"regexp"
)

// pemBlockPattern matches a single certificate block including its delimiters.
// The body is matched lazily so that adjacent blocks are never merged.
var pemBlockPattern = regexp.MustCompile(`(?s)-----BEGIN CERTIFICATE-----.*?-----END CERTIFICATE-----`)

// SplitPEMBlocks extracts every certificate PEM block from text.
//
// Each BEGIN/END CERTIFICATE pair yields one block, delimiters included, in
// the order it appears. Text outside any pair is ignored, so a blob without
// certificates produces an empty result rather than an error.
//
// Parameters:
//   - text: Arbitrary text that may contain PEM blocks
//
// Returns:
//   - []string: Raw PEM blocks, possibly empty
//   - error: [ErrInvalidArgument] if text is empty
func SplitPEMBlocks(text string) ([]string, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: PEM text is empty", ErrInvalidArgument)
	}

	blocks := pemBlockPattern.FindAllString(text, -1)
	if blocks == nil {
		return []string{}, nil
	}
	return blocks, nil
}

// ParseCertificates splits text into PEM blocks and decodes each of them on a
// best-effort basis. Blank text, noise, and corrupt blocks all reduce the
// result set; they are never reported as errors.
func ParseCertificates(text string) []*x509.Certificate {
	blocks, err := SplitPEMBlocks(text)
	if err != nil {
		return []*x509.Certificate{}
	}
	return New().DecodeBlocks(blocks)
}
