package view

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
)

func analyzeForm(b *strings.Builder) {
	b.WriteString(`<div class="card wide">
<form method="post" action="/analyze" enctype="multipart/form-data">
<label for="document">Upload your contract (.pdf, .docx, or .txt)</label>
<input id="document" name="document" type="file" accept=".pdf,.docx,.txt">
<label for="text">Or paste your contract text here:</label>
<textarea id="text" name="text" rows="8"></textarea>
<button type="submit">Analyze Text</button>
</form>
</div>
`)
}

// AnalyzePage renders the text-analysis form.
func AnalyzePage(userName string, flash *session.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Text Analysis", false)
		navBar(&b, userName)
		b.WriteString("<div class=\"subtext\">Upload or paste your legal text to analyze its readability.</div>\n")
		flashBox(&b, flash)
		analyzeForm(&b)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AnalyzeResultPage renders readability metrics and the preprocessed text.
func AnalyzeResultPage(userName string, scores service.ReadabilityScores, cleaned string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Text Analysis", false)
		navBar(&b, userName)
		b.WriteString("<div class=\"subtext\">Readability Metrics</div>\n")
		b.WriteString("<div class=\"columns\">\n")
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%.2f</h3><p>Flesch-Kincaid Grade</p></div>\n", scores.FleschKincaidGrade)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%.2f</h3><p>Gunning Fog Index</p></div>\n", scores.GunningFogIndex)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%d</h3><p>Sentences</p></div>\n", scores.SentenceCount)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%d</h3><p>Words</p></div>\n", scores.WordCount)
		b.WriteString("</div>\n")
		b.WriteString("<div class=\"card wide\"><h3>Preprocessed Text</h3><p>")
		b.WriteString(html.EscapeString(cleaned))
		b.WriteString("</p></div>\n")
		analyzeForm(&b)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
