// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/chain"
)

var (
	// ErrInputFileRequired is returned when a subcommand is run without its file argument.
	ErrInputFileRequired = errors.New("cli: input file is required")

	// ErrNoCertificates is returned when an input file holds no decodable certificate.
	ErrNoCertificates = errors.New("cli: no certificates found")

	// ErrPeerRejected is returned by verify when the client certificate is rejected.
	ErrPeerRejected = errors.New("cli: peer certificate rejected")

	// ErrIdentityMismatch is returned when the expected module identity is not
	// among the certificate's SAN URIs.
	ErrIdentityMismatch = errors.New("cli: identity not present in certificate")
)

// Execute runs the root command with ctx and returns its error.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:     exe,
		Short:   "X.509 peer trust engine",
		Long:    "Validate TLS peer certificates against default or pinned trust anchors and check edge module identities.",
		Version: version,
		Example: fmt.Sprintf(`  %[1]s verify client.pem --chain chain.pem --pinned root.pem
  %[1]s verify client.pem --hub myhub.azure-devices.net --device edge-01 --module tempSensor
  %[1]s thumbprint roots.pem
  %[1]s bundle trust-bundle.json`, exe),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newVerifyCommand(),
		newThumbprintCommand(),
		newSANCommand(),
		newBundleCommand(),
		newIdentityCommand(),
	)
	return rootCmd
}

// requireFile accepts exactly one positional argument.
func requireFile(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return ErrInputFileRequired
	case 1:
		return nil
	default:
		return fmt.Errorf("expected a single input file, got %d arguments", len(args))
	}
}

// readFile reads path through a pooled buffer.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	defer f.Close()

	data, err := gc.ReadAll(gc.Default, f)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return data, nil
}

// loadCertificates reads every certificate in path. PEM files may hold any
// number of blocks; anything else is decoded as a single DER certificate or
// a PKCS#7 bundle.
func loadCertificates(path string) ([]*x509.Certificate, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	decoder := x509certs.New()
	if decoder.IsPEM(data) {
		certs := x509certs.ParseCertificates(string(data))
		if len(certs) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoCertificates, path)
		}
		return certs, nil
	}

	cert, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrNoCertificates, path, err)
	}
	return []*x509.Certificate{cert}, nil
}

// renderCertificateList writes a markdown table with one row per certificate.
func renderCertificateList(w io.Writer, certs []*x509.Certificate) {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"#", "Subject", "CA", "Self-Signed", "Not After", "SHA-256"})

	rows := make([][]string, 0, len(certs))
	for i, cert := range certs {
		thumbprint, _ := x509certs.Thumbprint(cert)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			displayName(cert),
			fmt.Sprintf("%t", x509certs.IsCA(cert)),
			fmt.Sprintf("%t", x509chain.IsSelfSigned(cert)),
			cert.NotAfter.UTC().Format(time.RFC3339),
			thumbprint,
		})
	}

	table.Bulk(rows)
	table.Render()
}

func displayName(cert *x509.Certificate) string {
	if cn := strings.TrimSpace(cert.Subject.CommonName); cn != "" {
		return cn
	}
	return cert.Subject.String()
}
