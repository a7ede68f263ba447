// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	x509bundle "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/bundle"
)

func newBundleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle FILE",
		Short: "Decode a trust bundle payload",
		Long: `Decode a trust bundle JSON payload ({"certificate": "<PEM>"}) and list the
certificates it carries. Blocks that do not decode are skipped.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			bundle, err := x509bundle.DecodeTrustBundle(data)
			if err != nil {
				return err
			}
			certs, err := x509bundle.ParseTrustBundle(bundle)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(certs) == 0 {
				fmt.Fprintln(out, "No certificates in bundle")
				return nil
			}
			renderCertificateList(out, certs)
			return nil
		},
	}
}

func newIdentityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identity FILE",
		Short: "Decode an issued certificate payload",
		Long: `Decode an issued-certificate JSON payload (certificate, expiration and
privateKey) and summarize the resulting credential. The command fails when the
certificate or key cannot be decoded or the key does not belong to the leaf.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			resp, err := x509bundle.DecodeIssuedCertificateResponse(data)
			if err != nil {
				return err
			}
			cred, err := x509bundle.ParseIssuedCertificate(resp)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Leaf: %s\n", displayName(cred.Leaf))
			fmt.Fprintf(out, "Chain: %d certificate(s)\n", len(cred.Chain))
			fmt.Fprintf(out, "Private key: %s\n", keyAlgorithm(cred.Leaf, cred.HasPrivateKey()))
			if cred.Expiration.IsZero() {
				fmt.Fprintln(out, "Expiration: not stated")
			} else {
				fmt.Fprintf(out, "Expiration: %s\n", cred.Expiration.UTC().Format(time.RFC3339))
			}
			fmt.Fprintln(out)
			renderCertificateList(out, cred.Certificates())
			return nil
		},
	}
}

func keyAlgorithm(leaf *x509.Certificate, present bool) string {
	if !present {
		return "absent"
	}
	return fmt.Sprintf("present (%s)", leaf.PublicKeyAlgorithm)
}
