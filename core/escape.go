package core

import "strings"

// htmlEscaper replaces in a single pass, so entities it inserts are never
// escaped a second time.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML makes s safe to embed as HTML text or a quoted attribute value.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
