// internal/app/system/mailer/contactmail.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactEmailData holds the fields of a contact-form submission that go
// into the relayed email. Values are already validated and truncated by the
// caller.
type ContactEmailData struct {
	SiteName string
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// BuildContactEmail creates the relayed contact email with both HTML and
// text bodies. Reply-To is the submitter so a reply from the inbox reaches
// them directly.
func BuildContactEmail(to string, data ContactEmailData) Email {
	subject := data.Subject
	if subject == "" {
		subject = "New contact form submission"
	}
	return Email{
		To:       to,
		ReplyTo:  data.Email,
		Subject:  fmt.Sprintf("[%s] %s", data.SiteName, subject),
		TextBody: buildContactText(data),
		HTMLBody: buildContactHTML(data),
	}
}

func buildContactText(data ContactEmailData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "New message from the %s contact form.\n\n", data.SiteName)
	fmt.Fprintf(&buf, "Name: %s\n", data.Name)
	fmt.Fprintf(&buf, "Email: %s\n", data.Email)
	if data.Phone != "" {
		fmt.Fprintf(&buf, "Phone: %s\n", data.Phone)
	}
	buf.WriteString("\n")
	buf.WriteString(data.Message)
	buf.WriteString("\n")
	return buf.String()
}

func buildContactHTML(data ContactEmailData) string {
	tmpl := template.Must(template.New("contact").Parse(contactHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Contact form</title></head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color:#f3f4f6;">
    <tr><td align="center" style="padding:40px 20px;">
      <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width:520px;background-color:#ffffff;border-radius:8px;">
        <tr><td style="padding:24px 32px;border-bottom:1px solid #e5e7eb;">
          <h1 style="margin:0;font-size:20px;color:#111827;">{{.SiteName}} contact form</h1>
        </td></tr>
        <tr><td style="padding:24px 32px;">
          <p style="margin:0 0 8px;font-size:14px;color:#374151;"><strong>Name:</strong> {{.Name}}</p>
          <p style="margin:0 0 8px;font-size:14px;color:#374151;"><strong>Email:</strong> {{.Email}}</p>
          {{if .Phone}}<p style="margin:0 0 8px;font-size:14px;color:#374151;"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
          <div style="margin-top:16px;padding:16px;background-color:#f9fafb;border-radius:6px;font-size:14px;color:#1f2937;white-space:pre-wrap;">{{.Message}}</div>
        </td></tr>
        <tr><td style="padding:16px 32px;background-color:#f9fafb;border-top:1px solid #e5e7eb;">
          <p style="margin:0;font-size:12px;color:#9ca3af;">Reply to this email to answer the sender directly.</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`
