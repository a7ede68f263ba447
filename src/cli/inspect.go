// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	x509identity "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/identity"
)

func newThumbprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbprint FILE",
		Short: "List SHA-256 thumbprints of the certificates in a file",
		Long: `List every certificate in FILE with its SHA-256 thumbprint, CA flag and
whether it is self-signed.

The thumbprint is the value compared when matching pinned roots.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := loadCertificates(args[0])
			if err != nil {
				return err
			}
			renderCertificateList(cmd.OutOrStdout(), certs)
			return nil
		},
	}
}

func newSANCommand() *cobra.Command {
	var hub, device, module string

	cmd := &cobra.Command{
		Use:   "san FILE",
		Short: "Print the SAN URIs of a certificate",
		Long: `Print the URI entries of the Subject Alternative Name extension of the first
certificate in FILE, exactly as encoded. With --hub, --device and --module the
expected module identity is checked as well.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := loadCertificates(args[0])
			if err != nil {
				return err
			}
			cert := certs[0]
			out := cmd.OutOrStdout()

			uris := x509identity.ParseSANURIs(cert)
			if len(uris) == 0 {
				fmt.Fprintln(out, "No SAN URIs")
			}
			for _, uri := range uris {
				fmt.Fprintln(out, uri)
			}

			if hub == "" && device == "" && module == "" {
				return nil
			}
			expected := x509identity.DeviceURI(hub, device, module)
			if !x509identity.ValidateSANURI(cert, hub, device, module) {
				return fmt.Errorf("%w: %s", ErrIdentityMismatch, expected)
			}
			fmt.Fprintf(out, "Identity %s matched\n", expected)
			return nil
		},
	}

	cmd.Flags().StringVar(&hub, "hub", "", "expected IoT hub host name")
	cmd.Flags().StringVar(&device, "device", "", "expected device ID")
	cmd.Flags().StringVar(&module, "module", "", "expected module ID")
	cmd.MarkFlagsRequiredTogether("hub", "device", "module")

	return cmd
}
