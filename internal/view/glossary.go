package view

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/clearclause/clearclause/internal/domain"
)

// GlossaryPage renders the legal-terms glossary with a live search box.
func GlossaryPage(userName string, terms []domain.GlossaryTerm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Legal Glossary", true)
		navBar(&b, userName)
		b.WriteString("<div class=\"subtext\">Plain-language explanations of common legal terms.</div>\n")
		b.WriteString(`<div class="card wide" data-signals="{query: ''}">
<h3>Legal Terms Glossary</h3>
<label for="query">Search term:</label>
<input id="query" data-bind-query data-on-input__debounce.300ms="@get('/glossary/search')" placeholder="e.g. liability">
`)
		if err := writeGlossaryResults(&b, terms); err != nil {
			return err
		}
		b.WriteString("</div>\n")
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// GlossaryResults renders the result list fragment that live search patches
// into the page.
func GlossaryResults(terms []domain.GlossaryTerm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := writeGlossaryResults(&b, terms); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeGlossaryResults(b *strings.Builder, terms []domain.GlossaryTerm) error {
	b.WriteString("<div id=\"glossary-results\">\n")
	if len(terms) == 0 {
		b.WriteString("<p>No definition found.</p>\n")
	}
	for _, t := range terms {
		fmt.Fprintf(b, "<p><strong>%s</strong> → %s</p>\n",
			html.EscapeString(capitalize(t.Term)), html.EscapeString(t.Definition))
	}
	b.WriteString("</div>\n")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
