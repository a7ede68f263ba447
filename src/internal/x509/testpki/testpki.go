// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testpki issues throwaway certificates for tests. Nothing outside
// _test.go files should import it.
package testpki

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var serial atomic.Int64

// Cert is an issued certificate together with its key.
type Cert struct {
	Cert *x509.Certificate
	Key  crypto.Signer
}

// Options adjusts the template used by [Issue] and [SelfSigned].
type Options struct {
	CommonName string
	IsCA       bool
	// OmitBasicConstraints leaves the Basic Constraints extension out entirely.
	OmitBasicConstraints bool
	NotBefore            time.Time
	NotAfter             time.Time
	URIs                 []string
	DNSNames             []string
}

func (o Options) template(tb testing.TB) *x509.Certificate {
	tb.Helper()

	notBefore, notAfter := o.NotBefore, o.NotAfter
	if notBefore.IsZero() {
		notBefore = time.Now().Add(-time.Hour)
	}
	if notAfter.IsZero() {
		notAfter = time.Now().Add(24 * time.Hour)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(serial.Add(1)),
		Subject:               pkix.Name{CommonName: o.CommonName, Organization: []string{"x509-peer-trust tests"}},
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		BasicConstraintsValid: !o.OmitBasicConstraints,
		IsCA:                  o.IsCA,
		DNSNames:              o.DNSNames,
	}
	if o.IsCA {
		tmpl.KeyUsage = x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature
	} else {
		tmpl.KeyUsage = x509.KeyUsageDigitalSignature
		tmpl.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth}
	}
	for _, raw := range o.URIs {
		u, err := url.Parse(raw)
		require.NoError(tb, err, "invalid SAN URI %q", raw)
		tmpl.URIs = append(tmpl.URIs, u)
	}
	return tmpl
}

func newKey(tb testing.TB) *ecdsa.PrivateKey {
	tb.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(tb, err, "failed to generate key")
	return key
}

// SelfSigned creates a self-signed certificate.
func SelfSigned(tb testing.TB, opts Options) *Cert {
	tb.Helper()
	key := newKey(tb)
	tmpl := opts.template(tb)
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, key.Public(), key)
	require.NoError(tb, err, "failed to create self-signed certificate")
	return parse(tb, der, key)
}

// RootCA creates a self-signed CA certificate named cn.
func RootCA(tb testing.TB, cn string) *Cert {
	tb.Helper()
	return SelfSigned(tb, Options{CommonName: cn, IsCA: true})
}

// Issue creates a certificate signed by issuer.
func Issue(tb testing.TB, issuer *Cert, opts Options) *Cert {
	tb.Helper()
	key := newKey(tb)
	der, err := x509.CreateCertificate(rand.Reader, opts.template(tb), issuer.Cert, key.Public(), issuer.Key)
	require.NoError(tb, err, "failed to issue certificate")
	return parse(tb, der, key)
}

// CrossSign issues a copy of c with the same subject and key, signed by
// issuer instead of c's own issuer.
func CrossSign(tb testing.TB, c, issuer *Cert) *Cert {
	tb.Helper()
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(serial.Add(1)),
		RawSubject:            c.Cert.RawSubject,
		NotBefore:             c.Cert.NotBefore,
		NotAfter:              c.Cert.NotAfter,
		BasicConstraintsValid: c.Cert.BasicConstraintsValid,
		IsCA:                  c.Cert.IsCA,
		KeyUsage:              c.Cert.KeyUsage,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, issuer.Cert, c.Key.Public(), issuer.Key)
	require.NoError(tb, err, "failed to cross-sign certificate")
	return parse(tb, der, c.Key)
}

func parse(tb testing.TB, der []byte, key crypto.Signer) *Cert {
	tb.Helper()
	cert, err := x509.ParseCertificate(der)
	require.NoError(tb, err, "failed to parse generated certificate")
	return &Cert{Cert: cert, Key: key}
}

// CertPEM returns the PEM encoding of the certificate.
func (c *Cert) CertPEM() string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.Cert.Raw}))
}

// KeyPEM returns the PKCS#8 PEM encoding of the private key.
func (c *Cert) KeyPEM(tb testing.TB) string {
	tb.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(c.Key)
	require.NoError(tb, err, "failed to marshal private key")
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}
