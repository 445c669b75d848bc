package xssescape

import "text/template"

// FuncMap returns the escaping functions for use in text/template, one per
// output context:
//
//	<p>{{htmlBody .Name}}</p>
//	<input{{htmlAttr "value" .Query}}>
//	<a href="/search?q={{urlParam .Query}}">
//	<script>var name = '{{jsVar .Name}}';</script>
//	<div style="color: {{cssValue .Color}}">
//	<div id="data" hidden>{{jsonInHtml .Data}}</div>
//
// Any error stops template execution. html/template escapes on its own and
// does not need these.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"htmlBody":      HTMLBody,
		"htmlAttr":      HTMLAttr,
		"htmlAttrValue": HTMLAttrValue,
		"jsVar":         JSVar,
		"cssValue":      CSSValue,
		"urlParam":      URLParam,
		"jsonInHtml":    JSONInHTML,
		"validateUrl":   validateURLFunc,
	}
}

// validateURLFunc returns the URL unchanged so it can sit in a pipeline:
// {{validateUrl .Link | htmlAttrValue}}.
func validateURLFunc(v any) (string, error) {
	if err := ValidateURL(v); err != nil {
		return "", err
	}
	return ToString(v)
}
