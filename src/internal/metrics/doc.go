// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics reports client certificate validation outcomes to
// [Prometheus].
//
// Exported series:
//
//	x509_peer_trust_client_validations_total{result="accepted|rejected",reason="..."}
//
// [Prometheus]: https://prometheus.io
package metrics
