// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package validate wraps [validator] with the custom tags used by the
// configuration loader and the wire-payload parsers, and turns its field
// errors into one readable message.
//
// Custom tags:
//   - pem_certificate: string contains at least one PEM certificate header
//   - file_exists: path names an existing regular file (empty passes)
//
// [validator]: https://github.com/go-playground/validator
package validate
