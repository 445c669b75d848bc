package xssescape

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// allowedAttrs is the closed set of attribute names HTMLAttr accepts. It is
// built once and never modified.
var allowedAttrs = sliceToSet([]string{
	"accept", "action", "align", "alt", "autocapitalize", "autocomplete",
	"autopictureinpicture", "autoplay", "background", "bgcolor", "border",
	"capture", "cellpadding", "cellspacing", "checked", "cite", "class",
	"clear", "color", "cols", "colspan", "controls", "controlslist",
	"coords", "crossorigin", "datetime", "decoding", "default", "dir",
	"disabled", "disablepictureinpicture", "disableremoteplayback",
	"download", "draggable", "enctype", "enterkeyhint", "face", "for",
	"headers", "height", "hidden", "high", "href", "hreflang", "id",
	"inputmode", "integrity", "ismap", "kind", "label", "lang", "list",
	"loading", "loop", "low", "max", "maxlength", "media", "method", "min",
	"minlength", "multiple", "muted", "name", "nonce", "noshade",
	"novalidate", "nowrap", "open", "optimum", "pattern", "placeholder",
	"playsinline", "popover", "popovertarget", "popovertargetaction",
	"poster", "preload", "pubdate", "radiogroup", "readonly", "rel",
	"required", "rev", "reversed", "role", "rows", "rowspan", "spellcheck",
	"scope", "selected", "shape", "size", "sizes", "span", "srclang",
	"start", "src", "srcset", "step", "style", "summary", "tabindex",
	"title", "translate", "type", "usemap", "valign", "value", "width",
	"wrap", "xmlns", "slot",
})

// urlAttrs hold URLs and must pass ValidateURL.
var urlAttrs = sliceToSet([]string{"href", "src"})

// AllowedAttributes returns the attribute names HTMLAttr accepts, sorted.
// The returned slice is a copy.
func AllowedAttributes() []string {
	names := make([]string, 0, len(allowedAttrs))
	for name := range allowedAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAllowedAttribute reports whether HTMLAttr accepts name. The check is
// case-insensitive.
func IsAllowedAttribute(name string) bool {
	return allowedAttrs[lowerName(name)]
}

// HTMLAttr escapes v as the value of the attribute name and returns the
// whole attribute, with a leading space, ready to splice into a tag:
//
//	<input HTMLAttr("value", v)>  =>  <input value="...">
//
// name is lowercased and must be in AllowedAttributes, otherwise the error
// wraps ErrAttributeNotAllowed. href and src values must also pass
// ValidateURL.
func HTMLAttr(name string, v any) (string, error) {
	return htmlAttr(name, v, true)
}

// HTMLAttrUnwrapped is HTMLAttr without the surrounding name="...", for
// templates that write the attribute name and quotes themselves.
func HTMLAttrUnwrapped(name string, v any) (string, error) {
	return htmlAttr(name, v, false)
}

func htmlAttr(name string, v any, wrap bool) (string, error) {
	name = lowerName(name)
	if !allowedAttrs[name] {
		return "", fmt.Errorf("%w: %q", ErrAttributeNotAllowed, name)
	}

	s, err := ToString(v)
	if err != nil {
		return "", err
	}
	if urlAttrs[name] {
		if err := ValidateURL(s); err != nil {
			return "", fmt.Errorf("attribute %s: %w", name, err)
		}
	}

	encoded, err := HTMLAttrValue(s)
	if err != nil {
		return "", err
	}
	if !wrap {
		return encoded, nil
	}
	return " " + name + `="` + encoded + `"`, nil
}

// lowerName folds an attribute name to lower case. A Caser keeps state, so
// a new one is made per call.
func lowerName(name string) string {
	return cases.Lower(language.Und).String(name)
}

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}
