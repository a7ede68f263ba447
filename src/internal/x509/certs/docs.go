// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides the decoding layer for [X.509] peer certificates.
// It splits arbitrary text into [PEM] certificate blocks, decodes them on a
// best-effort basis (DER and [PKCS7] payloads included), parses issued
// identities with their private keys, and computes SHA-256 thumbprints.
//
// Errors follow two classes: [ErrInvalidArgument] for caller contract
// violations and [ErrInvalidState] for corrupt issued identities. Malformed peer
// input never produces an error; it produces fewer certificates.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
