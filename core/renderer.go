package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
)

const LiveReloadPath = "/__hello_reload"

const liveReloadScript = `<script>(function(){var p=location.protocol==="https:"?"wss://":"ws://";var s=new WebSocket(p+location.host+%q);s.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="reload"){console.log("hello: reloading after change to "+m.path);location.reload();}};})();</script>`

// Slot markers stand in for the template's values while the page skeleton
// is prepared, so neither the minifier nor the script injection ever sees
// caller-supplied text.
const (
	slotName    = "hello-slot-name-6f1c"
	slotVersion = "hello-slot-version-6f1c"
	slotVendor  = "hello-slot-vendor-6f1c"
)

type PageOptions struct {
	Minify         bool
	LiveReloadPath string
}

// Renderer produces the greeting page for a fixed runtime. The page is
// prepared once; rendering only splices in the escaped name, so a Renderer
// is safe for concurrent use.
type Renderer struct {
	runtime RuntimeInfo
	head    string
	tail    string
}

func NewRenderer(rt RuntimeInfo, opts PageOptions) (*Renderer, error) {
	page := fmt.Sprintf(GreetingTemplate, slotName, slotVersion, slotVendor)

	if opts.LiveReloadPath != "" {
		page = injectBeforeBodyEnd(page, fmt.Sprintf(liveReloadScript, opts.LiveReloadPath))
	}

	if opts.Minify {
		out, err := newPageMinifier().String("text/html", page)
		if err != nil {
			return nil, errors.Wrap(err, "minify greeting page")
		}
		page = out
	}

	head, tail, ok := strings.Cut(page, slotName)
	if !ok {
		return nil, errors.New("greeting page lost its name slot")
	}

	fill := strings.NewReplacer(slotVersion, rt.Version, slotVendor, rt.Vendor)
	return &Renderer{
		runtime: rt,
		head:    fill.Replace(head),
		tail:    fill.Replace(tail),
	}, nil
}

func (r *Renderer) Runtime() RuntimeInfo {
	return r.runtime
}

func (r *Renderer) Render(name string) []byte {
	escaped := EscapeHTML(name)
	page := make([]byte, 0, len(r.head)+len(escaped)+len(r.tail))
	page = append(page, r.head...)
	page = append(page, escaped...)
	page = append(page, r.tail...)
	return page
}

func newPageMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &minhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("text/javascript", minjs.Minify)
	m.AddFunc("application/javascript", minjs.Minify)
	return m
}

func injectBeforeBodyEnd(page, snippet string) string {
	i := strings.LastIndex(page, "</body>")
	if i == -1 {
		return page + snippet
	}
	return page[:i] + snippet + "\n" + page[i:]
}
