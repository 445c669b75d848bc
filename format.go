package xssescape

import (
	"fmt"
	"strconv"
)

// Format selects the escape syntax Encode uses for unsafe code points.
type Format uint8

// Format values.
const (
	// FormatHTML renders &#xHH; entities.
	FormatHTML Format = iota + 1
	// FormatUnicode renders \u{HH} escapes (ES2015 code point escapes).
	FormatUnicode
	// FormatCSS renders \HHHHHH escapes, zero-padded to six digits.
	FormatCSS
	// FormatURL renders %HH, where HH is the code point and not its UTF-8
	// bytes.
	FormatURL

	// FormatStrip keeps safe code points and silently drops everything
	// else.
	//
	// Deprecated: FormatStrip exists only to reproduce the behavior of
	// callers that passed an unrecognized format name. Use one of the
	// escaping formats.
	FormatStrip
)

// String returns the name of f as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatUnicode:
		return "unicode"
	case FormatCSS:
		return "css"
	case FormatURL:
		return "url"
	case FormatStrip:
		return "strip"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat returns the Format named by name. Only the four escaping
// formats can be parsed; FormatStrip must be chosen explicitly.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "html":
		return FormatHTML, nil
	case "unicode":
		return FormatUnicode, nil
	case "css":
		return FormatCSS, nil
	case "url":
		return FormatURL, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func (f Format) valid() bool {
	return f >= FormatHTML && f <= FormatStrip
}
