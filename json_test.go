package xssescape_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/njchilds90/xssescape"
)

func TestJSONInHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"tag in value", map[string]string{"a": "<b>"}, `{"a":"\u003Cb\u003E"}`},
		{"ampersand", []string{"a&b"}, `["a\u0026b"]`},
		{"quotes", "it's \"x\"", `"it\u0027s \u0022x\u0022"`},
		{"closing script", "</script>", `"\u003C\/script\u003E"`},
		{"escaped key", map[string]int{"<k>": 1}, `{"\u003Ck\u003E":1}`},
		{"backslash before quote", `a\"`, `"a\\\u0022"`},
		{"trailing backslash", `a\`, `"a\\"`},
		{"newline", "a\nb", `"a\nb"`},
		{"latin1", "é", `"\u00e9"`},
		{"astral", "😀", `"\ud83d\ude00"`},
		{"number", 12.5, `12.5`},
		{"bool", true, `true`},
		{"nil", nil, `null`},
		{"empty slice", []int{}, `[]`},
		{"sorted keys", map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"integer zero", 0, `[]`},
		{"unsigned zero", uint8(0), `[]`},
		{"float zero", 0.0, `[]`},
		{"negative zero", math.Copysign(0, -1), `-0`},
		{"nested zero", []int{0}, `[0]`},
		{"large float", 1e25, `1e+25`},
		{"struct", struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		}{"<x>", []string{"'"}}, `{"name":"\u003Cx\u003E","tags":["\u0027"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xssescape.JSONInHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJSONInHTML_RoundTrip(t *testing.T) {
	type payload struct {
		Text  string            `json:"text"`
		Attrs map[string]string `json:"attrs"`
		List  []any             `json:"list"`
	}
	in := payload{
		Text:  `</script><script>alert("x" & 'y')</script> \ 日本 😀`,
		Attrs: map[string]string{"on<click>": `"quoted"`, "path": "/a/b"},
		List:  []any{"<", 1.5, nil, true},
	}

	got, err := xssescape.JSONInHTML(in)
	require.NoError(t, err)

	for _, c := range []string{"<", ">", "&", "'"} {
		assert.NotContains(t, got, c)
	}
	for _, r := range got {
		assert.Less(t, r, rune(0x80), "output must be ASCII")
	}

	var out payload
	require.NoError(t, json.Unmarshal([]byte(got), &out))
	assert.Equal(t, in.Text, out.Text)
	assert.Equal(t, in.Attrs, out.Attrs)
	assert.Equal(t, []any{"<", 1.5, nil, true}, out.List)
}

func TestJSONInHTML_SurvivesHTMLParsing(t *testing.T) {
	data := map[string]string{"x": `</div><script>alert(1)</script>&amp;`}
	got, err := xssescape.JSONInHTML(data)
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(`<div id="data" style="display:none">` + got + `</div>`))
	require.NoError(t, err)
	text := textOf(t, doc, "div")
	assert.Equal(t, got, text)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, data, out)
}

type cyclic struct {
	Next *cyclic `json:"next"`
}

type badMarshaler struct{}

func (badMarshaler) MarshalJSON() ([]byte, error) {
	return nil, errors.New("boom")
}

func TestJSONInHTML_SerializationError(t *testing.T) {
	loop := &cyclic{}
	loop.Next = loop

	tests := []struct {
		name  string
		input any
	}{
		{"cycle", loop},
		{"channel", make(chan int)},
		{"func", func() {}},
		{"complex", complex(1, 2)},
		{"nan", math.NaN()},
		{"inf in map", map[string]float64{"x": math.Inf(1)}},
		{"marshaler error", badMarshaler{}},
		{"invalid utf8", "a\xffb"},
		{"invalid utf8 key", map[string]int{"k\xff": 1}},
		{"invalid utf8 field", struct{ Name string }{"\xc3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xssescape.JSONInHTML(tt.input)
			assert.ErrorIs(t, err, xssescape.ErrSerialization)
			assert.Empty(t, got)
		})
	}
}

func TestJSONInHTML_WrapsEncoderError(t *testing.T) {
	_, err := xssescape.JSONInHTML(make(chan int))
	var semErr *jsonv2.SemanticError
	assert.True(t, errors.As(err, &semErr))
}

func TestJSONInHTML_FloatsMatchToString(t *testing.T) {
	for _, f := range []float64{1.5, -0.25, 100, 123456789, 1e20, 1e21, 1e25, 1e-6, 1e-7, 3.14159e-12} {
		want, err := xssescape.ToString(f)
		require.NoError(t, err)
		got, err := xssescape.JSONInHTML(f)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", f)
	}
}
