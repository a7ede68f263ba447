// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/helper/validate"
)

type payload struct {
	Certificate string   `json:"certificate" validate:"required,pem_certificate"`
	Mode        string   `json:"mode" validate:"omitempty,oneof=default pinned"`
	Files       []string `json:"files" validate:"dive,file_exists"`
}

func TestStruct(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "root.pem")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	const pemText = "-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"

	tests := []struct {
		name        string
		input       payload
		errContains []string
	}{
		{
			name:  "Valid",
			input: payload{Certificate: pemText, Mode: "pinned", Files: []string{existing}},
		},
		{
			name:        "Missing Certificate",
			input:       payload{},
			errContains: []string{"payload.certificate is required"},
		},
		{
			name:        "Not PEM",
			input:       payload{Certificate: "garbage"},
			errContains: []string{"payload.certificate must contain a PEM certificate"},
		},
		{
			name:        "Bad Mode And Missing File",
			input:       payload{Certificate: pemText, Mode: "system", Files: []string{filepath.Join(dir, "missing.pem")}},
			errContains: []string{"payload.mode must be one of: default pinned", "does not exist"},
		},
		{
			name:        "Directory Is Not A File",
			input:       payload{Certificate: pemText, Files: []string{dir}},
			errContains: []string{"payload.files[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if len(tt.errContains) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestStructNonStruct(t *testing.T) {
	assert.Error(t, validate.Struct("not a struct"))
}
