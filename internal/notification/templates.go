package notification

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

type emailTemplate struct {
	subject string
	text    *texttemplate.Template
	html    *template.Template
}

var templates = map[Kind]emailTemplate{
	KindWelcome: {
		subject: "Karibu Bimasoft Insurance, {{.Name}}!",
		text:    texttemplate.Must(texttemplate.New("welcome.txt").Parse(welcomeText)),
		html:    template.Must(template.New("welcome.html").Parse(welcomeHTML)),
	},
	KindCredentials: {
		subject: "Welcome to BimaSoft! Login details",
		text:    texttemplate.Must(texttemplate.New("credentials.txt").Parse(credentialsText)),
		html:    template.Must(template.New("credentials.html").Parse(credentialsHTML)),
	},
	KindApprovalRequest: {
		subject: "New Company Created - {{.CompanyName}}",
		text:    texttemplate.Must(texttemplate.New("approval.txt").Parse(approvalText)),
		html:    template.Must(template.New("approval.html").Parse(approvalHTML)),
	},
}

// Build renders the subject and both bodies for kind.
func Build(to string, kind Kind, data TemplateData) (Email, error) {
	tpl, ok := templates[kind]
	if !ok {
		return Email{}, fmt.Errorf("notification: unknown template %q", kind)
	}

	subject, err := renderText("subject", tpl.subject, data)
	if err != nil {
		return Email{}, err
	}

	var text bytes.Buffer
	if err := tpl.text.Execute(&text, data); err != nil {
		return Email{}, fmt.Errorf("render %s text: %w", kind, err)
	}
	var html bytes.Buffer
	if err := tpl.html.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("render %s html: %w", kind, err)
	}

	return Email{To: to, Subject: subject, TextBody: text.String(), HTMLBody: html.String()}, nil
}

func renderText(name, src string, data TemplateData) (string, error) {
	t, err := texttemplate.New(name).Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

const welcomeText = `Hello {{.Name}},

Welcome to Bimasoft Insurance! We're excited to have you join our platform designed specifically for Tanzanian insurance companies and brokers like you.

Bimasoft simplifies and streamlines your insurance operations. We help you manage policies efficiently, provide quick and accurate quotes to your customers and gain insight into customer trends.

You will receive a follow-up email with your login details shortly.

Karibu sana!

Bimasoft Team
`

const welcomeHTML = `<p>Hello {{.Name}},</p>
<p>Welcome to Bimasoft Insurance! We're excited to have you join our platform designed specifically for Tanzanian insurance companies and brokers like you.</p>
<h3>What is Bimasoft?</h3>
<ul>
  <li>Manage policies efficiently.</li>
  <li>Provide quick and accurate quotes to your customers.</li>
  <li>Gain valuable insights into customer trends.</li>
  <li>Offer a wide range of insurance products.</li>
</ul>
<h3>Next Steps</h3>
<p>You will receive a follow-up email with your admin login details shortly.</p>
<p>Karibu sana!<br/><br/>Bimasoft Team</p>
`

const credentialsText = `Your custom password is: {{.Password}}. You can log in using the following link: {{.LoginURL}}. Once logged in, you can change your password from your account settings.
`

const credentialsHTML = `<p>Your custom password is: <strong>{{.Password}}</strong>.</p>
<p>You can log in using the following link: <a href="{{.LoginURL}}">{{.LoginURL}}</a></p>
<p>Once logged in, you can change your password from your account settings.</p>
`

const approvalText = `A new company has been created and is waiting for approval. Here are the details:

Company Name: {{.CompanyName}}
Company Email: {{.CompanyEmail}}
Company Address: {{.CompanyAddress}}

Please review and approve the company.
`

const approvalHTML = `<p>A new company has been created and is waiting for approval. Here are the details:</p>
<p><strong>Company Name:</strong> {{.CompanyName}}</p>
<p><strong>Company Email:</strong> {{.CompanyEmail}}</p>
<p><strong>Company Address:</strong> {{.CompanyAddress}}</p>
<p>Please review and approve the company.</p>
`
