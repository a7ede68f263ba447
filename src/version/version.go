// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package version provides centralized version information for the X.509 peer trust tool.
package version

// Version holds the current version of the X.509 peer trust tool.
// This value can be overridden at build time using ldflags.
var Version = "0.1.0"
