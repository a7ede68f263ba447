// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509client decides whether a TLS client certificate is acceptable
// as a peer credential.
//
// A client certificate passes when all of the following hold:
//   - The current time lies within its validity window
//   - It is not a CA certificate
//   - A trust path exists from it to an acceptable root (see [x509chain.Validate])
//
// Rejections are reported as false together with a logged reason; they are
// never errors. Only a missing leaf, chain or logger is an error.
//
// Example usage:
//
//	v := x509client.New(x509client.WithRecorder(metrics.NewPrometheusRecorder(nil)))
//	ok, err := v.Validate(state.PeerCertificates[0], state.PeerCertificates[1:], anchors, log)
//	if err != nil {
//		return err
//	}
//	if !ok {
//		return errPeerRejected
//	}
package x509client
