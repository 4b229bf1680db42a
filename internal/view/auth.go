package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/clearclause/clearclause/internal/session"
)

// LoginPage renders the sign-in form.
func LoginPage(flash *session.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Sign In", false)
		b.WriteString("<div class=\"subtext\">Simplify legal contracts using AI — log in to continue.</div>\n")
		flashBox(&b, flash)
		b.WriteString(`<div class="card">
<h2>Sign In</h2>
<form method="post" action="/login">
<label for="email">Email</label>
<input id="email" name="email" type="email" required>
<label for="password">Password</label>
<input id="password" name="password" type="password" required>
<button type="submit">Login</button>
</form>
<form method="post" action="/nav/signup"><button class="link" type="submit">Create Account</button></form>
<form method="post" action="/nav/forgot"><button class="link" type="submit">Forgot Password?</button></form>
</div>
`)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SignupPage renders the account-creation form.
func SignupPage(flash *session.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Create Account", false)
		flashBox(&b, flash)
		b.WriteString(`<div class="card">
<h2>Create Account</h2>
<form method="post" action="/signup">
<label for="name">Full Name</label>
<input id="name" name="name" required>
<label for="email">Email</label>
<input id="email" name="email" type="email" required>
<label for="password">Password</label>
<input id="password" name="password" type="password" required>
<label for="confirm">Confirm Password</label>
<input id="confirm" name="confirm" type="password" required>
<button type="submit">Sign Up</button>
</form>
<form method="post" action="/nav/back"><button class="link" type="submit">Back to Login</button></form>
</div>
`)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ForgotPage renders the password-reset form.
func ForgotPage(flash *session.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		head(&b, "Reset Password", false)
		flashBox(&b, flash)
		b.WriteString(`<div class="card">
<h2>Reset Password</h2>
<form method="post" action="/forgot-password">
<label for="email">Enter your registered email</label>
<input id="email" name="email" type="email" required>
<label for="new_password">New Password</label>
<input id="new_password" name="new_password" type="password" required>
<label for="confirm">Confirm New Password</label>
<input id="confirm" name="confirm" type="password" required>
<button type="submit">Reset Password</button>
</form>
<form method="post" action="/nav/back"><button class="link" type="submit">Back to Login</button></form>
</div>
`)
		foot(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
