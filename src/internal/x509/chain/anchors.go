// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/x509"
	"fmt"
	"strings"

	x509certs "github.com/H0llyW00dzZ/x509-peer-trust/src/internal/x509/certs"
)

// TrustMode selects how the root of a built path is judged.
type TrustMode int

const (
	// TrustModeDefault trusts whatever self-issued root the supplied chain
	// terminates in.
	TrustModeDefault TrustMode = iota
	// TrustModePinned trusts only roots that are identical to a pinned certificate.
	TrustModePinned
)

// String returns the configuration name of the mode.
func (m TrustMode) String() string {
	switch m {
	case TrustModeDefault:
		return "default"
	case TrustModePinned:
		return "pinned"
	default:
		return fmt.Sprintf("TrustMode(%d)", int(m))
	}
}

// ParseTrustMode parses "default" or "pinned" (case-insensitive).
func ParseTrustMode(s string) (TrustMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return TrustModeDefault, nil
	case "pinned":
		return TrustModePinned, nil
	default:
		return TrustModeDefault, fmt.Errorf("%w: unknown trust mode %q", x509certs.ErrInvalidArgument, s)
	}
}

// TrustAnchors is the set of acceptable roots for a validation call.
//
// It is a tagged value: [DefaultTrust] and [PinnedTrust] with no roots are
// opposite policies (trust the presented root versus trust nothing) and are
// never conflated. The zero value is [DefaultTrust].
//
// TrustAnchors is immutable and safe to share between goroutines.
type TrustAnchors struct {
	mode        TrustMode
	roots       []*x509.Certificate
	thumbprints map[string]struct{}
}

// DefaultTrust returns anchors that trust the root the supplied chain ends in.
func DefaultTrust() TrustAnchors {
	return TrustAnchors{mode: TrustModeDefault}
}

// PinnedTrust returns anchors that accept only the given roots, compared by
// exact identity (SHA-256 thumbprint of the DER encoding). Nil entries are
// ignored. Calling it without roots yields a set that trusts nothing.
func PinnedTrust(roots ...*x509.Certificate) TrustAnchors {
	anchors := TrustAnchors{
		mode:        TrustModePinned,
		roots:       make([]*x509.Certificate, 0, len(roots)),
		thumbprints: make(map[string]struct{}, len(roots)),
	}
	for _, root := range roots {
		tp, err := x509certs.Thumbprint(root)
		if err != nil {
			continue
		}
		if _, dup := anchors.thumbprints[tp]; dup {
			continue
		}
		anchors.thumbprints[tp] = struct{}{}
		anchors.roots = append(anchors.roots, root)
	}
	return anchors
}

// Mode returns the trust mode.
func (a TrustAnchors) Mode() TrustMode { return a.mode }

// IsPinned reports whether the anchors restrict trust to pinned roots.
func (a TrustAnchors) IsPinned() bool { return a.mode == TrustModePinned }

// Len returns the number of distinct pinned roots. It is always zero for
// [DefaultTrust].
func (a TrustAnchors) Len() int { return len(a.roots) }

// Roots returns a copy of the pinned roots.
func (a TrustAnchors) Roots() []*x509.Certificate {
	return append([]*x509.Certificate(nil), a.roots...)
}

// Contains reports whether cert is identical to one of the pinned roots.
func (a TrustAnchors) Contains(cert *x509.Certificate) bool {
	tp, err := x509certs.Thumbprint(cert)
	if err != nil {
		return false
	}
	_, ok := a.thumbprints[tp]
	return ok
}

// accept checks a fully built path's root against the anchors.
func (a TrustAnchors) accept(root *x509.Certificate) error {
	if !a.IsPinned() {
		return nil
	}
	if len(a.roots) == 0 {
		return ErrNoTrustAnchors
	}
	if !a.Contains(root) {
		return fmt.Errorf("%w: %q is not a pinned root", ErrRootNotTrusted, subjectName(root))
	}
	return nil
}
