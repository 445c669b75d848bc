// Package xssescape provides contextual output encoding for untrusted data,
// following the OWASP Cross Site Scripting Prevention Cheat Sheet.
//
// # Overview
//
// Each function escapes a single value for one syntactic slot of an HTML
// document:
//   - [HTMLBody] — text inside an element: <span>DATA</span>
//   - [HTMLAttr] — a whole allow-listed attribute: <input value="DATA">
//   - [HTMLAttrValue] — an attribute value: <div class="a DATA">
//   - [ValidateURL] — https-only check for href and src
//   - [JSVar] — a quoted JavaScript string: var x = 'DATA'
//   - [CSSValue] — a CSS property value: style="width: DATA"
//   - [URLParam] — a URL query parameter: /search?q=DATA
//   - [JSONInHTML] — JSON inside a hidden element, read by JSON.parse
//
// [Encode] is the engine behind most of them. It leaves ASCII letters and
// digits and every code point from U+0100 up untouched and escapes the
// rest with one of four syntaxes selected by a [Format].
//
// Values are converted with [ToString]: strings, byte slices, numbers, nil,
// fmt.Stringer and encoding.TextMarshaler are accepted; anything else
// returns [ErrInputType].
//
// # Security
//
// The package never parses markup and does not sanitize HTML. It only
// escapes scalar values for the context named by the function, so the
// caller must pick the function that matches where the value is written.
// An error means the value must not be rendered; never fall back to the
// unescaped input.
//
// Code points at or above U+0100 are treated as safe in every context.
// Attribute names are checked against a closed allow-list
// ([AllowedAttributes]); event handlers such as onclick are never allowed.
// URLs in href and src must start with https://.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The package holds no mutable
// state.
//
// # Example
//
//	name, err := xssescape.HTMLBody(user.Name)
//	if err != nil {
//		return err
//	}
//	fmt.Fprintf(w, "<p>Hello, %s</p>", name)
package xssescape
