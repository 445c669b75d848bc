package xssescape

import (
	"errors"
	"fmt"
)

var (
	// ErrInputType is returned when a value cannot be converted to a string.
	ErrInputType = errors.New("xssescape: value must be a string or convertible to a string")

	// ErrValidation is the parent of every validation failure. Callers that
	// only care whether a value was rejected can match on it.
	ErrValidation = errors.New("xssescape: validation failed")

	// ErrAttributeNotAllowed is returned by HTMLAttr for names outside the
	// attribute allow-list.
	ErrAttributeNotAllowed = fmt.Errorf("%w: html attribute is not allowed", ErrValidation)

	// ErrInsecureURL is returned by ValidateURL when the URL is not https.
	ErrInsecureURL = fmt.Errorf("%w: url is not https", ErrValidation)

	// ErrSerialization is returned by JSONInHTML when the value cannot be
	// encoded as JSON.
	ErrSerialization = errors.New("xssescape: value cannot be encoded as json")

	// ErrUnknownFormat is returned for a Format outside the enumeration.
	ErrUnknownFormat = errors.New("xssescape: unknown escape format")
)
