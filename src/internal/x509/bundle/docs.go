// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509bundle decodes the wire payloads through which an edge runtime
// receives certificates: the trust bundle (a PEM blob of trusted roots) and
// the issued-certificate response (the runtime's own leaf, its chain and the
// matching private key).
//
// The two payloads fail differently. A trust bundle comes from outside and
// may be empty or garbage; that yields an empty certificate list. An issued
// certificate is the runtime's own identity; if it cannot be decoded the
// runtime cannot operate, so that is reported as [x509certs.ErrInvalidState].
//
// Example usage:
//
//	resp, err := x509bundle.DecodeIssuedCertificateResponse(body)
//	if err != nil {
//		return err
//	}
//	cred, err := x509bundle.ParseIssuedCertificate(resp)
//	if err != nil {
//		return err // fatal: no identity
//	}
//	tlsCert := tls.Certificate{PrivateKey: cred.PrivateKey, Leaf: cred.Leaf}
package x509bundle
