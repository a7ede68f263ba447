// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validate

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const pemCertificateHeader = "-----BEGIN CERTIFICATE-----"

// Validator wraps [validator.Validate] with the custom tags of this module.
//
// Thread Safety: Safe for concurrent use once constructed.
type Validator struct {
	validator *validator.Validate
}

// New creates a validator with the custom tags registered. Field names in
// messages are taken from the json tag when present.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("pem_certificate", validatePEMCertificate)
	_ = v.RegisterValidation("file_exists", validateFileExists)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &Validator{validator: v}
}

// Struct validates s and returns nil or a single error listing every failed
// field.
func (v *Validator) Struct(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Namespace(), message(fe)))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "pem_certificate":
		return "must contain a PEM certificate"
	case "file_exists":
		return fmt.Sprintf("file %q does not exist", fe.Value())
	case "required_with":
		return fmt.Sprintf("is required together with %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q tag", fe.Tag())
	}
}

func validatePEMCertificate(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), pemCertificateHeader)
}

func validateFileExists(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Default is the validator shared by the config loader and the payload parsers.
var Default = New()

// Struct validates s with [Default].
func Struct(s any) error { return Default.Struct(s) }
