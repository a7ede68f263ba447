// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/testpki"
)

func TestTrustAnchors(t *testing.T) {
	a := testpki.RootCA(t, "Anchor A")
	b := testpki.RootCA(t, "Anchor B")
	// Same subject and key type as a, but a different certificate.
	lookalike := testpki.RootCA(t, "Anchor A")

	t.Run("Zero Value Is Default", func(t *testing.T) {
		var anchors x509chain.TrustAnchors
		assert.False(t, anchors.IsPinned())
		assert.Equal(t, x509chain.TrustModeDefault, anchors.Mode())
	})

	t.Run("Default Is Not Empty Pinned", func(t *testing.T) {
		def := x509chain.DefaultTrust()
		empty := x509chain.PinnedTrust()
		assert.False(t, def.IsPinned())
		assert.True(t, empty.IsPinned())
		assert.Equal(t, 0, empty.Len())
		assert.False(t, empty.Contains(a.Cert))
	})

	t.Run("Exact Identity Membership", func(t *testing.T) {
		anchors := x509chain.PinnedTrust(a.Cert, b.Cert, a.Cert, nil)
		assert.Equal(t, 2, anchors.Len(), "duplicates and nil entries are dropped")
		assert.True(t, anchors.Contains(a.Cert))
		assert.True(t, anchors.Contains(b.Cert))
		assert.False(t, anchors.Contains(lookalike.Cert), "same subject is not the same certificate")
		assert.False(t, anchors.Contains(nil))
	})

	t.Run("Roots Returns Copy", func(t *testing.T) {
		anchors := x509chain.PinnedTrust(a.Cert)
		roots := anchors.Roots()
		roots[0] = b.Cert
		assert.True(t, anchors.Contains(a.Cert))
		assert.Same(t, a.Cert, anchors.Roots()[0])
	})
}

func TestParseTrustMode(t *testing.T) {
	tests := []struct {
		input    string
		expected x509chain.TrustMode
		wantErr  bool
	}{
		{input: "", expected: x509chain.TrustModeDefault},
		{input: "default", expected: x509chain.TrustModeDefault},
		{input: " Pinned ", expected: x509chain.TrustModePinned},
		{input: "system", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := x509chain.ParseTrustMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, x509certs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
			assert.Equal(t, tt.expected.String(), mode.String())
		})
	}

	assert.Equal(t, "TrustMode(7)", x509chain.TrustMode(7).String())
}
