// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/cli"
	verpkg "github.com/H0llyW00dzZ/x509-peer-trust/src/version"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")
	if version != verpkg.Version {
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Success", err: nil, expected: exitOK},
		{name: "Rejected", err: cli.ErrPeerRejected, expected: exitRejected},
		{name: "Identity Mismatch Wrapped", err: fmt.Errorf("%w: azureiot://h/devices/d/modules/m", cli.ErrIdentityMismatch), expected: exitRejected},
		{name: "Input Error", err: cli.ErrInputFileRequired, expected: exitError},
		{name: "Other", err: errors.New("boom"), expected: exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}
