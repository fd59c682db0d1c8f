package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Alice", "Alice"},
		{"<script>", "&lt;script&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"a & b", "a &amp; b"},
		{"&lt;", "&amp;lt;"},
		{`<a href="x">'</a>`, "&lt;a href=&quot;x&quot;&gt;&#39;&lt;/a&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeHTML(tt.input))
		})
	}
}

func TestEscapeHTML_AmpersandNotDoubleEscaped(t *testing.T) {
	got := EscapeHTML("<&>")
	assert.Equal(t, "&lt;&amp;&gt;", got)
	assert.NotContains(t, got, "&amp;lt;")
}

func TestEscapeHTML_LeavesNoMarkupCharacters(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		`"><img src=x onerror=alert(1)>`,
		"'&<>\"",
		"<<>>&&''\"\"",
	}

	for _, input := range inputs {
		got := EscapeHTML(input)
		for _, c := range []string{"<", ">", `"`, "'"} {
			assert.False(t, strings.Contains(got, c), "escaped %q still contains %q: %q", input, c, got)
		}
	}
}
