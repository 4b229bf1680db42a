package view

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
)

func simplifyForm(b *strings.Builder, level domain.SimplificationLevel) {
	b.WriteString(`<div class="card wide">
<form method="post" action="/simplify" enctype="multipart/form-data">
<label for="document">Upload contract (PDF, DOCX, TXT)</label>
<input id="document" name="document" type="file" accept=".pdf,.docx,.txt">
<label for="text">Or paste your contract text here:</label>
<textarea id="text" name="text" rows="8"></textarea>
<label for="level">Simplification Level</label>
<select id="level" name="level">
`)
	for _, opt := range []struct {
		value domain.SimplificationLevel
		label string
	}{
		{domain.LevelBasic, "Basic"},
		{domain.LevelIntermediate, "Intermediate"},
		{domain.LevelAdvanced, "Advanced"},
	} {
		selected := ""
		if opt.value == level {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>\n", opt.value, selected, opt.label)
	}
	b.WriteString(`</select>
<button type="submit">Simplify Contract</button>
</form>
</div>
`)
}

// SimplifyPage renders the upload/paste form.
func SimplifyPage(userName string, flash *session.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Simplify Contracts", false)
		navBar(&b, userName)
		b.WriteString("<div class=\"subtext\">Upload or paste your legal text to simplify it intelligently using AI.</div>\n")
		flashBox(&b, flash)
		simplifyForm(&b, domain.LevelIntermediate)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SimplifyResultPage renders the original text (with glossary terms marked)
// next to the simplified rendering.
func SimplifyResultPage(userName string, level domain.SimplificationLevel, original []service.Segment, simplified string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Simplified Contract", false)
		navBar(&b, userName)
		fmt.Fprintf(&b, "<div class=\"subtext\">Simplified using <strong>%s</strong> mode. Glossary terms are highlighted.</div>\n",
			html.EscapeString(string(level)))
		b.WriteString("<div class=\"columns\">\n<div class=\"card\"><h3>Original Text</h3><p>")
		for _, seg := range original {
			if seg.Term {
				fmt.Fprintf(&b, "<mark>%s</mark>", html.EscapeString(seg.Text))
			} else {
				b.WriteString(html.EscapeString(seg.Text))
			}
		}
		b.WriteString("</p></div>\n<div class=\"card\"><h3>Simplified Text</h3><p>")
		b.WriteString(html.EscapeString(simplified))
		b.WriteString("</p>\n")
		// Nothing is persisted server-side, so the download is a data URI.
		fmt.Fprintf(&b, "<p><a download=\"simplified.txt\" href=\"data:text/plain;charset=utf-8,%s\">Download Simplified Text</a></p>\n",
			html.EscapeString(url.PathEscape(simplified)))
		b.WriteString("</div>\n</div>\n")
		simplifyForm(&b, level)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
