// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the trust policy used by the command-line tool.
//
// Configuration is read from a JSON or YAML file (.json, .yaml, .yml) whose
// path is given explicitly or through the X509_PEER_TRUST_CONFIG environment
// variable. Missing values fall back to defaults and the result is validated
// before use.
//
// Example YAML:
//
//	trust:
//	  mode: pinned
//	  pinnedRoots:
//	    - /etc/aziot/roots/edge-ca-root.pem
//	identity:
//	  hub: myhub.azure-devices.net
//	  device: edge-device-01
//	  module: tempSensor
//	output:
//	  format: tree
//	  logFormat: json
package config
