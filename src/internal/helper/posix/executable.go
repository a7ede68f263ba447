// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned by [GetExecutableName] when os.Args carries no
// program name.
const FallbackName = "x509-peer-trust"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It takes the last path component of os.Args[0], splitting on both '/' and
// '\' so that a Windows path is handled on any host, and strips a trailing
// ".exe".
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." {
		return FallbackName
	}
	return name
}
