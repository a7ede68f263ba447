// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/config"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/metrics"
	x509chain "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/chain"
	x509client "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/client"
	x509identity "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/identity"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/logger"
)

// ErrConflictingFlags is returned when verify flags contradict each other.
var ErrConflictingFlags = errors.New("cli: conflicting flags")

type verifyOptions struct {
	configPath    string
	intermediates string
	chainFiles    []string
	pinned        []string
	mode          string
	hub           string
	device        string
	module        string
	format        string
	logFormat     string
	metrics       bool
}

func newVerifyCommand() *cobra.Command {
	o := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify LEAF_FILE",
		Short: "Validate a client certificate against a trust policy",
		Long: `Validate a client certificate the way a TLS server would before accepting the peer.

The certificate must be within its validity window, must not be a CA
certificate, and must chain through the presented certificates to a
self-issued root. In pinned mode that root must be one of the pinned
certificates. Extra certificates in LEAF_FILE are treated as presented chain.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, "config", "c", "", "configuration file (JSON or YAML), defaults to $"+config.EnvConfigFile)
	flags.StringArrayVar(&o.chainFiles, "chain", nil, "file with certificates presented after the leaf (repeatable)")
	flags.StringArrayVarP(&o.pinned, "pinned", "p", nil, "pinned root certificate file (repeatable, implies --mode pinned)")
	flags.StringVarP(&o.mode, "mode", "m", "", "trust mode: default or pinned")
	flags.StringVar(&o.hub, "hub", "", "expected IoT hub host name")
	flags.StringVar(&o.device, "device", "", "expected device ID")
	flags.StringVar(&o.module, "module", "", "expected module ID")
	flags.StringVarP(&o.format, "format", "f", "", "path rendering: table, tree, json or pem")
	flags.StringVar(&o.intermediates, "intermediates", "", "write the intermediates of the built path to this PEM file")
	flags.StringVar(&o.logFormat, "log-format", "", "diagnostic log format: text or json")
	flags.BoolVar(&o.metrics, "metrics", false, "print validation metrics after the result")

	return cmd
}

// resolveConfig loads the configuration file and applies flag overrides.
func (o *verifyOptions) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(o.pinned) > 0 && flags.Changed("mode") {
		if mode, err := x509chain.ParseTrustMode(o.mode); err == nil && mode != x509chain.TrustModePinned {
			return nil, fmt.Errorf("%w: --pinned requires --mode pinned, got %q", ErrConflictingFlags, o.mode)
		}
	}
	if len(o.pinned) > 0 {
		cfg.Trust.Mode = x509chain.TrustModePinned.String()
		cfg.Trust.PinnedRoots = append(cfg.Trust.PinnedRoots, o.pinned...)
	}
	if flags.Changed("mode") {
		cfg.Trust.Mode = o.mode
	}
	if flags.Changed("hub") {
		cfg.Identity.Hub = o.hub
	}
	if flags.Changed("device") {
		cfg.Identity.Device = o.device
	}
	if flags.Changed("module") {
		cfg.Identity.Module = o.module
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("log-format") {
		cfg.Output.LogFormat = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type identityResult struct {
	URI     string `json:"uri"`
	Matched bool   `json:"matched"`
}

type verifyResult struct {
	Accepted   bool            `json:"accepted"`
	Reason     string          `json:"reason"`
	TrustMode  string          `json:"trustMode"`
	Diagnostic string          `json:"diagnostic,omitempty"`
	Identity   *identityResult `json:"identity,omitempty"`
	Path       json.RawMessage `json:"path"`
}

func (o *verifyOptions) run(cmd *cobra.Command, leafFile string) error {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return err
	}

	anchors, err := cfg.TrustAnchors()
	if err != nil {
		return err
	}

	leafCerts, err := loadCertificates(leafFile)
	if err != nil {
		return err
	}
	leaf := leafCerts[0]
	presented := make([]*x509.Certificate, 0, len(leafCerts)-1)
	presented = append(presented, leafCerts[1:]...)
	for _, path := range o.chainFiles {
		certs, err := loadCertificates(path)
		if err != nil {
			return err
		}
		presented = append(presented, certs...)
	}

	log, err := logger.New(cfg.Output.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	validator := x509client.New(x509client.WithRecorder(metrics.NewPrometheusRecorder(reg)))

	verdict, err := validator.Check(leaf, presented, anchors, log)
	if err != nil {
		return err
	}

	path := verdict.Path
	if path == nil {
		// Policy checks rejected the leaf before any path was built; build one
		// for display only.
		outcome, err := x509chain.Validate(leaf, presented, anchors)
		if err != nil {
			return err
		}
		path = outcome.Path
	}
	built, err := x509chain.Assemble(path[0], path[1:])
	if err != nil {
		return err
	}

	result := verifyResult{
		Accepted:   verdict.Accepted,
		Reason:     verdict.Reason,
		TrustMode:  anchors.Mode().String(),
		Diagnostic: verdict.Diagnostic,
	}
	if cfg.HasIdentity() {
		result.Identity = &identityResult{
			URI:     x509identity.DeviceURI(cfg.Identity.Hub, cfg.Identity.Device, cfg.Identity.Module),
			Matched: x509identity.ValidateSANURI(leaf, cfg.Identity.Hub, cfg.Identity.Device, cfg.Identity.Module),
		}
	}

	out := cmd.OutOrStdout()
	if err := writeVerifyResult(out, cfg.Output.Format, result, built); err != nil {
		return err
	}

	if o.intermediates != "" {
		if err := os.WriteFile(o.intermediates, built.EncodeMultiplePEM(built.FilterIntermediates()), 0o644); err != nil {
			return fmt.Errorf("cli: writing intermediates: %w", err)
		}
	}

	if o.metrics {
		if err := metrics.WriteText(out, reg); err != nil {
			return err
		}
	}

	switch {
	case !verdict.Accepted:
		return fmt.Errorf("%w: %s", ErrPeerRejected, verdict.Reason)
	case result.Identity != nil && !result.Identity.Matched:
		return fmt.Errorf("%w: %s", ErrIdentityMismatch, result.Identity.URI)
	}
	return nil
}

func writeVerifyResult(w io.Writer, format string, result verifyResult, path *x509chain.Chain) error {
	switch format {
	case "pem":
		_, err := w.Write(path.EncodeMultiplePEM(path.Certs))
		return err
	case "json":
		viz, err := path.ToVisualizationJSON()
		if err != nil {
			return err
		}
		result.Path = viz

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	verdict := "REJECTED"
	if result.Accepted {
		verdict = "ACCEPTED"
	}
	fmt.Fprintf(w, "Client certificate: %s (%s)\n", verdict, result.Reason)
	fmt.Fprintf(w, "Trust mode: %s\n", result.TrustMode)
	if result.Diagnostic != "" {
		fmt.Fprintf(w, "Diagnostic: %s\n", result.Diagnostic)
	}
	if id := result.Identity; id != nil {
		status := "not present"
		if id.Matched {
			status = "matched"
		}
		fmt.Fprintf(w, "Identity: %s (%s)\n", id.URI, status)
	}
	fmt.Fprintln(w)

	if format == "tree" {
		fmt.Fprint(w, path.RenderASCIITree())
	} else {
		fmt.Fprint(w, path.RenderTable())
	}
	return nil
}
