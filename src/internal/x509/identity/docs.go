// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509identity verifies edge device identities carried in the
// Subject Alternative Name extension of [X.509] certificates.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509identity
