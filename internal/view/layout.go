// Package view renders the application's HTML pages as templ components.
package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/clearclause/clearclause/internal/session"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// head writes the document head and opens the body. Pages that use live
// search set withDatastar to pull in the datastar bundle.
func head(b *strings.Builder, title string, withDatastar bool) {
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(b, "<title>%s — ClearClause</title>\n", html.EscapeString(title))
	if withDatastar {
		fmt.Fprintf(b, "<script type=\"module\" src=\"%s\"></script>\n", datastarCDN)
	}
	b.WriteString(`<style>
body { background-color: #f1f5fb; color: #1b1b1b; font-family: 'Segoe UI', sans-serif; margin: 0; }
.header { font-size: 30px; font-weight: 700; text-align: center; color: #1e3a5f; margin: 20px 0 10px; }
.subtext { font-size: 16px; text-align: center; color: #3a3a3a; margin-bottom: 30px; }
.card { background: #fff; padding: 25px; border-radius: 10px; box-shadow: 0 4px 10px rgba(0,0,0,0.1); max-width: 420px; margin: 0 auto 20px; }
.card.wide { max-width: 900px; }
.nav { text-align: center; margin-bottom: 20px; }
.nav a { color: #1e3a5f; font-weight: 600; margin: 0 10px; text-decoration: none; }
label { display: block; margin: 10px 0 4px; font-weight: 600; color: #1e3a5f; }
input, textarea, select { width: 100%; padding: 8px; border: 1px solid #c5d0e0; border-radius: 6px; box-sizing: border-box; }
button { background-color: #1e3a5f; color: white; border-radius: 6px; font-weight: 600; padding: 10px 20px; border: none; margin-top: 12px; cursor: pointer; }
button:hover { background-color: #365985; }
button.link { background: none; color: #1e3a5f; padding: 4px; }
.flash { max-width: 420px; margin: 0 auto 15px; padding: 10px 15px; border-radius: 6px; background: #e4f3e6; color: #1d5c27; }
.flash.error { background: #fbe4e4; color: #7a1d1d; }
.columns { display: flex; gap: 20px; max-width: 1100px; margin: 0 auto; }
.columns .card { flex: 1; max-width: none; }
.metric { background: white; padding: 20px; border-radius: 10px; box-shadow: 0 2px 6px rgba(0,0,0,0.1); text-align: center; flex: 1; }
.metric h3 { font-size: 26px; margin: 0; color: #1e3a5f; }
.metric p { margin: 5px 0 0; color: #3a3a3a; }
mark { background: #ffe9a8; padding: 0 2px; border-radius: 3px; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #e3e9f2; }
</style>
</head>
<body>
`)
	b.WriteString("<div class=\"header\">Contract Language Simplifier</div>\n")
}

func foot(b *strings.Builder) {
	b.WriteString("</body>\n</html>\n")
}

// flashBox renders a one-shot flash message, or nothing.
func flashBox(b *strings.Builder, flash *session.Flash) {
	if flash == nil {
		return
	}
	class := "flash"
	if flash.IsError {
		class = "flash error"
	}
	fmt.Fprintf(b, "<div class=\"%s\">%s</div>\n", class, html.EscapeString(flash.Message))
}

// navBar renders the signed-in navigation with the logout control.
func navBar(b *strings.Builder, userName string) {
	b.WriteString("<div class=\"nav\">")
	b.WriteString("<a href=\"/simplify\">Simplify</a>")
	b.WriteString("<a href=\"/analyze\">Analyze</a>")
	b.WriteString("<a href=\"/glossary\">Glossary</a>")
	b.WriteString("<a href=\"/dashboard\">Dashboard</a>")
	fmt.Fprintf(b, "<span>Logged in as: <strong>%s</strong></span>", html.EscapeString(userName))
	b.WriteString("<form method=\"post\" action=\"/logout\" style=\"display:inline\"><button class=\"link\" type=\"submit\">Log out</button></form>")
	b.WriteString("</div>\n")
}
