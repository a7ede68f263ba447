// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-peer-trust is a command-line tool for checking whether a TLS peer
// certificate would be accepted by an edge runtime.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-peer-trust/cmd/x509-peer-trust@latest
//
// # Usage
//
//	x509-peer-trust verify LEAF_FILE [FLAGS]
//	x509-peer-trust thumbprint FILE
//	x509-peer-trust san FILE [--hub HUB --device DEVICE --module MODULE]
//	x509-peer-trust bundle FILE
//	x509-peer-trust identity FILE
//
// # Verify Flags
//
//	-c, --config      Configuration file (JSON or YAML)
//	    --chain       File with certificates presented after the leaf (repeatable)
//	-p, --pinned      Pinned root certificate file (repeatable, implies pinned mode;
//	                  --mode default alongside it is an error)
//	-m, --mode        Trust mode: default or pinned
//	    --hub         Expected IoT hub host name
//	    --device      Expected device ID
//	    --module      Expected module ID
//	-f, --format      Path rendering: table, tree, json or pem
//	    --intermediates  Write the intermediates of the built path to a PEM file
//	    --log-format  Diagnostic log format: text or json
//	    --metrics     Print validation metrics after the result
//
// # Environment Variables
//
//	X509_PEER_TRUST_CONFIG  Path to configuration file (alternative to --config flag)
//
// # Exit Codes
//
//	0    Success
//	1    Usage, input or configuration error
//	2    Peer rejected or identity not present
//	130  Interrupted
//
// # Examples
//
// Validate a module certificate against a pinned edge CA root:
//
//	x509-peer-trust verify module.pem --chain edge-ca.pem --pinned edge-ca-root.pem
//
// Check the module identity as well and render the path as a tree:
//
//	x509-peer-trust verify module.pem --chain edge-ca.pem \
//	    --hub myhub.azure-devices.net --device edge-01 --module tempSensor --format tree
//
// Save the intermediates the peer presented, in path order:
//
//	x509-peer-trust verify module.pem --chain presented.pem --intermediates edge-ca.pem
package main
