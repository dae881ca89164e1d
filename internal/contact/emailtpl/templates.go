package emailtpl

import (
	"html/template"
	texttemplate "text/template"
)

var (
	notificationHTML = template.Must(template.New("notification_html").Parse(notificationHTMLSource))
	confirmationHTML = template.Must(template.New("confirmation_html").Parse(confirmationHTMLSource))
	notificationText = texttemplate.Must(texttemplate.New("notification_text").Parse(notificationTextSource))
	confirmationText = texttemplate.Must(texttemplate.New("confirmation_text").Parse(confirmationTextSource))
)

const notificationHTMLSource = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2430; max-width: 640px; margin: 0 auto;">
  <div style="background: #1a73e8; color: #ffffff; padding: 20px 24px; border-radius: 6px 6px 0 0;">
    <h2 style="margin: 0;">New Contact Form Submission</h2>
  </div>
  <div style="border: 1px solid #e3e6ea; border-top: none; padding: 24px; border-radius: 0 0 6px 6px;">
    <table cellpadding="6" cellspacing="0" style="width: 100%;">
      <tr><td style="font-weight: bold; width: 130px;">Name</td><td>{{.Name}}</td></tr>
      <tr><td style="font-weight: bold;">Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
      {{if .Company}}<tr><td style="font-weight: bold;">Company</td><td>{{.Company}}</td></tr>{{end}}
      {{if .Role}}<tr><td style="font-weight: bold;">Role</td><td>{{.Role}}</td></tr>{{end}}
      {{if .ProjectType}}<tr><td style="font-weight: bold;">Project Type</td><td>{{.ProjectType}}</td></tr>{{end}}
      {{if .Budget}}<tr><td style="font-weight: bold;">Budget</td><td>{{.Budget}}</td></tr>{{end}}
      {{if .Timeline}}<tr><td style="font-weight: bold;">Timeline</td><td>{{.Timeline}}</td></tr>{{end}}
    </table>
    <div style="margin-top: 16px; padding: 16px; background: #f6f8fa; border-radius: 6px; white-space: pre-wrap;">{{.Message}}</div>
    <p style="margin-top: 24px; font-size: 12px; color: #6a737d;">
      Received {{.When}}{{if .SourceIP}} from {{.SourceIP}}{{end}}
      {{if .WebsiteURL}}via <a href="{{.WebsiteURL}}">{{.WebsiteURL}}</a>{{end}}
    </p>
  </div>
</body>
</html>
`

const notificationTextSource = `New contact form submission

Name: {{.Name}}
Email: {{.Email}}
{{- if .Company}}
Company: {{.Company}}
{{- end}}
{{- if .Role}}
Role: {{.Role}}
{{- end}}
{{- if .ProjectType}}
Project Type: {{.ProjectType}}
{{- end}}
{{- if .Budget}}
Budget: {{.Budget}}
{{- end}}
{{- if .Timeline}}
Timeline: {{.Timeline}}
{{- end}}

Message:
{{.Message}}

Received {{.When}}{{if .SourceIP}} from {{.SourceIP}}{{end}}
`

const confirmationHTMLSource = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2430; max-width: 640px; margin: 0 auto;">
  <div style="background: #188038; color: #ffffff; padding: 20px 24px; border-radius: 6px 6px 0 0;">
    <h2 style="margin: 0;">Thank you for reaching out!</h2>
  </div>
  <div style="border: 1px solid #e3e6ea; border-top: none; padding: 24px; border-radius: 0 0 6px 6px;">
    <p>Hi {{.Name}},</p>
    <p>Thank you for getting in touch{{if .ProjectType}} about your {{.ProjectType}} project{{end}}.
       Your message was received on {{.When}} and I will get back to you within 24-48 hours.</p>
    <p>If your request is urgent, reply to this email directly
       {{- if .OperatorEmail}} or write to <a href="mailto:{{.OperatorEmail}}">{{.OperatorEmail}}</a>{{end}}.</p>
    <p style="margin-top: 24px;">Best regards,<br>{{if .OperatorName}}{{.OperatorName}}{{else}}The team{{end}}</p>
    {{if .WebsiteURL}}<p style="font-size: 12px; color: #6a737d;"><a href="{{.WebsiteURL}}">{{.WebsiteURL}}</a></p>{{end}}
  </div>
</body>
</html>
`

const confirmationTextSource = `Hi {{.Name}},

Thank you for getting in touch{{if .ProjectType}} about your {{.ProjectType}} project{{end}}.
Your message was received on {{.When}} and I will get back to you within 24-48 hours.

If your request is urgent, reply to this email directly{{if .OperatorEmail}} or write to {{.OperatorEmail}}{{end}}.

Best regards,
{{if .OperatorName}}{{.OperatorName}}{{else}}The team{{end}}
{{- if .WebsiteURL}}
{{.WebsiteURL}}
{{- end}}
`
