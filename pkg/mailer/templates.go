package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Transactional email bodies. Kept as simple inline table layouts so they
// survive the usual mail clients.

const welcomeHTML = `<!doctype html>
<html lang="en" style="margin:0;padding:0;">
  <body style="margin:0;padding:0;background:#f6f7fb;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f6f7fb;">
      <tr><td align="center" style="padding:24px;">
        <table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="max-width:560px;background:#ffffff;border-radius:8px;">
          <tr><td align="center" style="padding:32px 24px 16px 24px;">
            <h1 style="margin:0;font-size:24px;color:#111827;">Welcome to Trench!</h1>
          </td></tr>
          <tr><td style="padding:0 24px 24px 24px;">
            <p style="margin:0;font-size:16px;line-height:1.5;color:#374151;">
              Hi {{.Name}},<br /><br />
              Your account has been created successfully. Explore all the
              features and make the most of Trench.
            </p>
          </td></tr>
          <tr><td align="center" style="padding:0 24px 32px 24px;">
            <a href="{{.DashboardURL}}" style="display:inline-block;background:#16a34a;color:#ffffff;text-decoration:none;font-size:16px;font-weight:600;padding:14px 24px;border-radius:6px;">Go to Dashboard</a>
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`

const resetPasswordHTML = `<!doctype html>
<html lang="en" style="margin:0;padding:0;">
  <body style="margin:0;padding:0;background:#f6f7fb;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f6f7fb;">
      <tr><td align="center" style="padding:24px;">
        <table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="max-width:560px;background:#ffffff;border-radius:8px;">
          <tr><td align="center" style="padding:32px 24px 16px 24px;">
            <h1 style="margin:0;font-size:22px;color:#111827;">Reset your password</h1>
          </td></tr>
          <tr><td style="padding:0 24px 24px 24px;">
            <p style="margin:0;font-size:16px;line-height:1.5;color:#374151;">
              Hi {{.Name}},<br /><br />
              We received a request to reset your password. Click the button
              below to choose a new password. The link expires in one hour.
            </p>
          </td></tr>
          <tr><td align="center" style="padding:0 24px 32px 24px;">
            <a href="{{.ResetURL}}" style="display:inline-block;background:#2563eb;color:#ffffff;text-decoration:none;font-size:16px;font-weight:600;padding:14px 24px;border-radius:6px;">Reset Password</a>
          </td></tr>
          <tr><td style="padding:0 24px 32px 24px;">
            <p style="margin:0;font-size:14px;line-height:1.5;color:#6b7280;">
              If the button doesn't work, copy and paste this link into your browser:<br />
              <a href="{{.ResetURL}}" style="color:#2563eb;word-break:break-all;">{{.ResetURL}}</a>
            </p>
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`

var templates = map[string]struct {
	subject string
	body    *template.Template
}{
	"welcome":        {"Welcome to Trench!", template.Must(template.New("welcome").Parse(welcomeHTML))},
	"reset_password": {"Reset your password @Trench", template.Must(template.New("reset_password").Parse(resetPasswordHTML))},
}

// Render produces the subject and HTML body for a named template.
func Render(name string, data map[string]any) (subject, html string, err error) {
	t, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return t.subject, buf.String(), nil
}
