// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// Cobra integration:
//
//	rootCmd := &cobra.Command{
//	    Use:     posix.GetExecutableName(),
//	    Example: fmt.Sprintf("  %s verify leaf.pem --chain chain.pem", posix.GetExecutableName()),
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/x509-peer-trust" → "x509-peer-trust"
//   - Windows: "C:\bin\x509-peer-trust.exe" → "x509-peer-trust"
//   - Fallback: Empty args → "x509-peer-trust"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
