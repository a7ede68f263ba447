// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509identity

import (
	"crypto/x509"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// oidExtensionSubjectAltName is the Subject Alternative Name extension (RFC 5280, 4.2.1.6).
var oidExtensionSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// uriNameTag is the GeneralName choice for uniformResourceIdentifier, [6] IA5String.
var uriNameTag = cbasn1.Tag(6).ContextSpecific()

// DeviceURI returns the identity URI of an edge module:
// azureiot://{hub}/devices/{deviceID}/modules/{moduleID}.
// The parts are inserted verbatim.
func DeviceURI(hub, deviceID, moduleID string) string {
	return fmt.Sprintf("azureiot://%s/devices/%s/modules/%s", hub, deviceID, moduleID)
}

// ParseSANURIs returns the URI-typed Subject Alternative Names of cert in the
// order they are stored.
//
// The entries are read from the raw extension, so they are the exact encoded
// strings rather than a re-serialized URL. A nil certificate, a missing
// extension or a malformed extension all yield an empty result.
func ParseSANURIs(cert *x509.Certificate) []string {
	uris := []string{}
	if cert == nil {
		return uris
	}

	for _, ext := range cert.Extensions {
		if !ext.Id.Equal(oidExtensionSubjectAltName) {
			continue
		}
		parsed, ok := parseURINames(ext.Value)
		if !ok {
			return []string{}
		}
		uris = append(uris, parsed...)
	}
	return uris
}

// parseURINames walks a GeneralNames SEQUENCE and collects the URI entries.
func parseURINames(der []byte) ([]string, bool) {
	input := cryptobyte.String(der)

	var names cryptobyte.String
	if !input.ReadASN1(&names, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, false
	}

	var uris []string
	for !names.Empty() {
		var value cryptobyte.String
		var tag cbasn1.Tag
		if !names.ReadAnyASN1(&value, &tag) {
			return nil, false
		}
		if tag == uriNameTag {
			uris = append(uris, string(value))
		}
	}
	return uris, true
}

// ValidateSANURI reports whether cert carries the identity URI of the given
// module. The match is exact and case-sensitive; no wildcards or
// normalization are applied.
func ValidateSANURI(cert *x509.Certificate, hub, deviceID, moduleID string) bool {
	expected := DeviceURI(hub, deviceID, moduleID)
	for _, uri := range ParseSANURIs(cert) {
		if uri == expected {
			return true
		}
	}
	return false
}
