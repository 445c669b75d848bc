package xssescape

import (
	"bytes"
	"fmt"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// httpsPrefix is the only URL prefix ValidateURL accepts.
const httpsPrefix = "https://"

// htmlBodyReplacements are applied one after another. & comes first so the
// entities introduced by the later rules are not escaped again.
var htmlBodyReplacements = [...][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#x27;"},
}

// IsSafe reports whether r is passed through unescaped by Encode: ASCII
// letters and digits, and every code point from U+0100 up.
//
// Code points at or above U+0100 are never markup or script syntax in any
// of the supported contexts, so they are left alone.
func IsSafe(r rune) bool {
	return r >= 256 ||
		(r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z')
}

// Encode converts v with ToString and escapes every code point for which
// IsSafe is false using the syntax selected by f. The hex digits are the
// uppercase code point value:
//
//	FormatHTML     &#x3C;
//	FormatUnicode  \u{3C}
//	FormatCSS      \00003C
//	FormatURL      %3C
//
// Encode is not idempotent: encoding its own output escapes the escape
// characters again.
func Encode(v any, f Format) (string, error) {
	s, err := ToString(v)
	if err != nil {
		return "", err
	}
	return encode(s, f)
}

func encode(s string, f Format) (string, error) {
	if !f.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	var buf bytes.Buffer
	buf.Grow(len(s))
	var scratch [8]byte

	// Invalid UTF-8 decodes to U+FFFD, which is safe and written as such.
	for _, r := range s {
		if IsSafe(r) {
			buf.WriteRune(r)
			continue
		}
		hex := appendHex(scratch[:0], r)
		switch f {
		case FormatHTML:
			buf.WriteString("&#x")
			buf.Write(hex)
			buf.WriteByte(';')
		case FormatUnicode:
			buf.WriteString(`\u{`)
			buf.Write(hex)
			buf.WriteByte('}')
		case FormatCSS:
			buf.WriteByte('\\')
			for i := len(hex); i < 6; i++ {
				buf.WriteByte('0')
			}
			buf.Write(hex)
		case FormatURL:
			buf.WriteByte('%')
			buf.Write(hex)
		case FormatStrip:
			// dropped
		}
	}
	return buf.String(), nil
}

func appendHex(dst []byte, r rune) []byte {
	if r >= 16 {
		dst = appendHex(dst, r>>4)
	}
	return append(dst, upperhex[r&0xF])
}

// HTMLBody escapes v for text inside an HTML element, e.g.
// <span>UNTRUSTED</span>. Only & < > " and ' are replaced.
func HTMLBody(v any) (string, error) {
	s, err := ToString(v)
	if err != nil {
		return "", err
	}
	for _, r := range htmlBodyReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s, nil
}

// HTMLAttrValue escapes v for an HTML attribute value, e.g.
// <div class="a b UNTRUSTED">. Every character except ASCII letters and
// digits becomes a &#xHH; entity, spaces included.
func HTMLAttrValue(v any) (string, error) {
	return Encode(v, FormatHTML)
}

// ValidateURL returns an error wrapping ErrInsecureURL unless v starts with
// "https://". The comparison is case-sensitive and protocol-relative URLs
// are rejected. The URL is not otherwise checked or modified; encode it
// for its context separately.
func ValidateURL(v any) error {
	s, err := ToString(v)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(s, httpsPrefix) {
		return ErrInsecureURL
	}
	return nil
}

// JSVar escapes v for a quoted JavaScript string, e.g.
// var x = 'UNTRUSTED'. The caller supplies the quotes. Do not use it for
// JSON embedded in HTML; use JSONInHTML.
func JSVar(v any) (string, error) {
	return Encode(v, FormatUnicode)
}

// CSSValue escapes v for a CSS property value, e.g.
// <div style="width: UNTRUSTED;">.
func CSSValue(v any) (string, error) {
	return Encode(v, FormatCSS)
}

// URLParam escapes v for a URL query parameter, e.g.
// /search?q=UNTRUSTED. A URL placed in an HTML attribute must be encoded
// for the attribute as well.
func URLParam(v any) (string, error) {
	return Encode(v, FormatURL)
}
