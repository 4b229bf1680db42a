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

// DashboardPage renders usage aggregates and the user's recent activity.
func DashboardPage(userName string, userCount int, stats domain.UsageStats, recent []domain.SimplificationLog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Dashboard", false)
		navBar(&b, userName)
		b.WriteString("<div class=\"subtext\">Simplification Insights</div>\n")

		b.WriteString("<div class=\"columns\">\n")
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%d</h3><p>Registered Users</p></div>\n", userCount)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%d</h3><p>Simplification Requests</p></div>\n", stats.TotalRequests)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%.0f%%</h3><p>Successful Simplifications</p></div>\n", stats.SuccessRate()*100)
		fmt.Fprintf(&b, "<div class=\"metric\"><h3>%.1fs</h3><p>Avg Response Time</p></div>\n", stats.AvgDurationMS/1000)
		b.WriteString("</div>\n")

		b.WriteString("<div class=\"card wide\"><h3>Your Recent Activity</h3>\n")
		if len(recent) == 0 {
			b.WriteString("<p>No requests yet. Try simplifying a contract.</p>\n")
		} else {
			b.WriteString("<table><tr><th>When</th><th>Level</th><th>Input</th><th>Output</th><th>Duration</th><th>Status</th></tr>\n")
			for _, log := range recent {
				status := "ok"
				if !log.Success {
					status = "failed"
				}
				fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d chars</td><td>%d chars</td><td>%d ms</td><td>%s</td></tr>\n",
					html.EscapeString(log.CreatedAt.Format("2006-01-02 15:04")),
					html.EscapeString(log.Level),
					log.InputChars, log.OutputChars, log.DurationMS, status)
			}
			b.WriteString("</table>\n")
		}
		b.WriteString("</div>\n")
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ErrorPage renders a bare error page with the given status and message.
func ErrorPage(status int, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, title, false)
		fmt.Fprintf(&b, "<div class=\"card\"><h2>%d — %s</h2><p>%s</p><p><a href=\"/\">Back to start</a></p></div>\n",
			status, html.EscapeString(title), html.EscapeString(message))
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
