// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
	x509identity "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/identity"
)

// RenderASCIITree renders the certificate chain as an ASCII tree diagram.
//
// Each line shows a CA marker, the subject common name and the role derived
// from the certificate's position in the chain.
//
// Returns:
//   - string: ASCII tree representation of the certificate chain
func (ch *Chain) RenderASCIITree() string {
	if len(ch.Certs) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	for i, cert := range ch.Certs {
		connector := "├── "
		if i == len(ch.Certs)-1 {
			connector = "└── "
		}

		marker := "EE"
		if x509certs.IsCA(cert) {
			marker = "CA"
		}

		certInfo := fmt.Sprintf("[%s] %s", marker, subjectName(cert))
		if role := ch.getCertificateRole(i); role != "" {
			certInfo += fmt.Sprintf(" (%s)", role)
		}

		result.WriteString(strings.Repeat("    ", i) + connector + certInfo + "\n")
	}

	return result.String()
}

// RenderTable renders the certificate chain as a formatted markdown table.
//
// It displays role, subject, issuer, validity window, key size, CA flag and a
// shortened SHA-256 thumbprint for each certificate.
//
// Returns:
//   - string: Markdown table representation of the certificate chain
func (ch *Chain) RenderTable() string {
	if len(ch.Certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	headers := []string{"#", "Role", "Subject", "Issuer", "Valid From", "Valid Until", "Key", "CA", "SHA-256"}
	table.Header(headers)

	var rows [][]string
	for i, cert := range ch.Certs {
		_, keySize := describeKey(cert.PublicKey)

		thumbprint, _ := x509certs.Thumbprint(cert)
		if len(thumbprint) > 16 {
			thumbprint = thumbprint[:16]
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ch.getCertificateRole(i),
			subjectName(cert),
			cert.Issuer.CommonName,
			cert.NotBefore.Format("2006-01-02"),
			cert.NotAfter.Format("2006-01-02"),
			keySize,
			fmt.Sprintf("%t", x509certs.IsCA(cert)),
			thumbprint,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToVisualizationJSON converts the certificate chain to structured JSON for external tools.
//
// Returns:
//   - []byte: JSON representation of the certificate chain
//   - error: Error if JSON marshaling fails
func (ch *Chain) ToVisualizationJSON() ([]byte, error) {
	type CertificateVizData struct {
		Index              int       `json:"index"`
		Role               string    `json:"role"`
		Subject            string    `json:"subject"`
		Issuer             string    `json:"issuer"`
		SerialNumber       string    `json:"serialNumber"`
		SignatureAlgorithm string    `json:"signatureAlgorithm"`
		PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
		KeySize            string    `json:"keySize"`
		NotBefore          time.Time `json:"notBefore"`
		NotAfter           time.Time `json:"notAfter"`
		IsCA               bool      `json:"isCA"`
		Thumbprint         string    `json:"sha256Thumbprint"`
		URIs               []string  `json:"uris,omitempty"`
	}

	type RelationshipData struct {
		FromIndex int    `json:"fromIndex"`
		ToIndex   int    `json:"toIndex"`
		Type      string `json:"type"`
	}

	type VisualizationData struct {
		Timestamp     string               `json:"timestamp"`
		ChainLength   int                  `json:"chainLength"`
		Certificates  []CertificateVizData `json:"certificates"`
		Relationships []RelationshipData   `json:"relationships"`
	}

	data := VisualizationData{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ChainLength:   len(ch.Certs),
		Certificates:  make([]CertificateVizData, len(ch.Certs)),
		Relationships: make([]RelationshipData, 0, len(ch.Certs)),
	}

	for i, cert := range ch.Certs {
		algo, keySize := describeKey(cert.PublicKey)
		thumbprint, _ := x509certs.Thumbprint(cert)

		data.Certificates[i] = CertificateVizData{
			Index:              i,
			Role:               ch.getCertificateRole(i),
			Subject:            cert.Subject.String(),
			Issuer:             cert.Issuer.String(),
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: cert.SignatureAlgorithm.String(),
			PublicKeyAlgorithm: algo,
			KeySize:            keySize,
			NotBefore:          cert.NotBefore,
			NotAfter:           cert.NotAfter,
			IsCA:               x509certs.IsCA(cert),
			Thumbprint:         thumbprint,
			URIs:               x509identity.ParseSANURIs(cert),
		}
	}

	// Each cert is issued by the next one in the chain
	for i := 0; i < len(ch.Certs)-1; i++ {
		data.Relationships = append(data.Relationships, RelationshipData{
			FromIndex: i,
			ToIndex:   i + 1,
			Type:      "issued_by",
		})
	}

	return json.MarshalIndent(data, "", "  ")
}

// describeKey returns the public key algorithm and a size label.
func describeKey(pub any) (string, string) {
	switch key := pub.(type) {
	case *rsa.PublicKey:
		return "RSA", fmt.Sprintf("%d-bit RSA", key.Size()*8)
	case *ecdsa.PublicKey:
		return "ECDSA", fmt.Sprintf("%d-bit ECDSA", key.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "Ed25519", "Ed25519"
	default:
		return "unknown", "unknown"
	}
}

// getCertificateRole determines the role of a certificate in the chain.
//
// Parameters:
//   - index: Zero-based position of the certificate in the chain
//
// Returns:
//   - string: Role description
func (ch *Chain) getCertificateRole(index int) string {
	total := len(ch.Certs)
	switch {
	case total == 1 && IsSelfSigned(ch.Certs[0]):
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity (Client/Leaf) Certificate"
	case index == total-1 && IsSelfIssued(ch.Certs[index]):
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}
