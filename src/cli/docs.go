// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 peer trust engine.
// It implements a Cobra-based CLI with the following subcommands:
//
//   - verify: Validate a client certificate and its presented chain against the
//     default or a pinned trust policy, optionally checking the module identity
//   - thumbprint: List SHA-256 thumbprints, CA and self-signed flags of certificates in a file
//   - san: Print the SAN URIs of a certificate
//   - bundle: Decode a trust bundle payload and list its certificates
//   - identity: Decode an issued-certificate payload and summarize the credential
//
// Files are read through the shared buffer pool. Results go to the command's
// output stream and diagnostics to its error stream, so both can be captured
// in tests.
package cli
