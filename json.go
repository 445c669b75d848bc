package xssescape

import (
	"bytes"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-json-experiment/json"
)

// jsonStringEscapes are the characters rewritten inside JSON strings, in
// addition to non-ASCII code points.
var jsonStringEscapes = [utf8.RuneSelf]string{
	'&':  `\u0026`,
	'<':  `\u003C`,
	'>':  `\u003E`,
	'\'': `\u0027`,
	'/':  `\/`,
}

// JSONInHTML encodes v as JSON that can be placed as the text of an HTML
// element and read back with JSON.parse(el.textContent):
//
//	<div id="data" style="display:none">JSONInHTML(v)</div>
//
// Inside string literals & < > ' and " are written as \u0026 \u003C
// \u003E \u0027 \u0022, / as \/ and every non-ASCII code point as
// \uXXXX, so the result is plain ASCII. Object keys are sorted.
//
// Values that cannot be represented as JSON (cycles, channels, functions,
// NaN, strings holding invalid UTF-8) return an error wrapping
// ErrSerialization. A bare zero encodes as [] rather than 0.
func JSONInHTML(v any) (string, error) {
	raw, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if string(raw) == "0" {
		return "[]", nil
	}
	return escapeJSONStrings(raw), nil
}

// escapeJSONStrings rewrites the string literals of well-formed JSON as
// described on JSONInHTML. Everything outside string literals is ASCII and
// copied unchanged.
func escapeJSONStrings(src []byte) string {
	var buf bytes.Buffer
	buf.Grow(len(src) + len(src)/8)

	inString := false
	for i := 0; i < len(src); {
		c := src[i]
		if !inString {
			if c == '"' {
				inString = true
			}
			buf.WriteByte(c)
			i++
			continue
		}

		switch {
		case c == '\\':
			// \" is the only escape that needs rewriting; the rest are
			// ASCII already.
			if i+1 < len(src) && src[i+1] == '"' {
				buf.WriteString(`\u0022`)
			} else {
				buf.WriteByte(c)
				if i+1 < len(src) {
					buf.WriteByte(src[i+1])
				}
			}
			i += 2
		case c == '"':
			inString = false
			buf.WriteByte(c)
			i++
		case c < utf8.RuneSelf:
			if esc := jsonStringEscapes[c]; esc != "" {
				buf.WriteString(esc)
			} else {
				buf.WriteByte(c)
			}
			i++
		default:
			r, size := utf8.DecodeRune(src[i:])
			if r > 0xFFFF {
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&buf, `\u%04x\u%04x`, hi, lo)
			} else {
				fmt.Fprintf(&buf, `\u%04x`, r)
			}
			i += size
		}
	}
	return buf.String()
}
