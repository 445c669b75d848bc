// Package xsstempl adapts the xssescape encoders to templ components.
//
// templ escapes interpolated values on its own; these helpers cover the
// cases where a template needs the stricter OWASP encodings or a JSON data
// island:
//
//	@xsstempl.JSONData("settings", settings)
//
//	<script>const s = JSON.parse(document.getElementById("settings").textContent)</script>
//
// Nothing is written when encoding fails; the error is returned from
// Render.
package xsstempl

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/njchilds90/xssescape"
)

// Text renders v as HTML body text using xssescape.HTMLBody.
func Text(v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := xssescape.HTMLBody(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	})
}

// JSONData renders v as a hidden element holding JSON that scripts can
// read with JSON.parse(el.textContent). id is encoded as an attribute
// value.
func JSONData(id string, v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attr, err := xssescape.HTMLAttr("id", id)
		if err != nil {
			return err
		}
		data, err := xssescape.JSONInHTML(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "<div"+attr+` style="display:none">`+data+"</div>")
		return err
	})
}

// URL returns v as a templ.SafeURL after it passes xssescape.ValidateURL.
// templ still escapes the value for the attribute it is placed in.
func URL(v any) (templ.SafeURL, error) {
	if err := xssescape.ValidateURL(v); err != nil {
		return "", err
	}
	s, err := xssescape.ToString(v)
	if err != nil {
		return "", err
	}
	return templ.SafeURL(s), nil
}
