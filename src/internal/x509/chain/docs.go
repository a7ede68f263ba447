// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain implements [X.509] chain assembly and trust-path validation.
// It provides capabilities to:
//   - Assemble a leaf-first chain from a leaf and the certificates presented with it.
//   - Build a path from the leaf to a self-issued root using only the presented certificates.
//   - Judge the root either in default mode (trust the presented root) or against a
//     pinned set of roots compared by exact identity.
//   - Render chains as ASCII trees, markdown tables or JSON.
//
// All operations are synchronous and keep no shared state, so one validation
// per inbound TLS handshake can run concurrently without coordination.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
