package services

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"
)

// Email template names
const (
	TemplateContactAdmin          = "contact_admin"
	TemplateServiceRequestAdmin   = "service_request_admin"
	TemplateTechnicalInquiryAdmin = "technical_inquiry_admin"
	TemplateTechnicalInquiryAck   = "technical_inquiry_ack"
)

type emailTemplateSource struct {
	subject string
	html    string
	text    string
}

// RenderedEmail is the output of one template render
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

type compiledEmailTemplate struct {
	subject *liquid.Template
	html    *liquid.Template
	text    *liquid.Template
}

// EmailTemplates holds the compiled liquid notification templates
type EmailTemplates struct {
	engine    *liquid.Engine
	templates map[string]*compiledEmailTemplate
}

// NewEmailTemplates compiles the built-in templates. It panics if one of
// them does not parse.
func NewEmailTemplates() *EmailTemplates {
	t := &EmailTemplates{
		engine:    liquid.NewEngine(),
		templates: make(map[string]*compiledEmailTemplate, len(emailTemplateSources)),
	}
	for name, src := range emailTemplateSources {
		compiled, err := t.compile(src)
		if err != nil {
			panic(fmt.Sprintf("email template %s: %v", name, err))
		}
		t.templates[name] = compiled
	}
	return t
}

func (t *EmailTemplates) compile(src emailTemplateSource) (*compiledEmailTemplate, error) {
	subject, err := t.engine.ParseString(src.subject)
	if err != nil {
		return nil, err
	}
	html, err := t.engine.ParseString(src.html)
	if err != nil {
		return nil, err
	}
	text, err := t.engine.ParseString(src.text)
	if err != nil {
		return nil, err
	}
	return &compiledEmailTemplate{subject: subject, html: html, text: text}, nil
}

// Render renders the named template with data
func (t *EmailTemplates) Render(name string, data map[string]interface{}) (*RenderedEmail, error) {
	tpl, ok := t.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", name)
	}

	subject, err := tpl.subject.RenderString(data)
	if err != nil {
		return nil, fmt.Errorf("render %s subject: %w", name, err)
	}
	html, err := tpl.html.RenderString(data)
	if err != nil {
		return nil, fmt.Errorf("render %s html: %w", name, err)
	}
	text, err := tpl.text.RenderString(data)
	if err != nil {
		return nil, fmt.Errorf("render %s text: %w", name, err)
	}

	return &RenderedEmail{
		// Header injection guard
		Subject: strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(subject)),
		HTML:    html,
		Text:    strings.TrimSpace(text),
	}, nil
}

const emailLayoutStart = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
`

const emailLayoutEnd = `
        <p style="color: #64748B; font-size: 14px;">Submitted {{ submitted_at }}</p>
    </div>
</body>
</html>`

var emailTemplateSources = map[string]emailTemplateSource{
	TemplateContactAdmin: {
		subject: `New Contact Form Submission from {{ name }}`,
		html: emailLayoutStart + `        <h2 style="color: #1C5D99;">New Contact Form Submission</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> {{ name | escape }}</p>
            <p><strong>Email:</strong> <a href="mailto:{{ email | escape }}">{{ email | escape }}</a></p>
            <p><strong>Company:</strong> {{ company | default: "Not provided" | escape }}</p>
            <p><strong>Subject:</strong> {{ subject | default: "Not provided" | escape }}</p>
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Message:</h3>
            <p style="white-space: pre-wrap;">{{ message | escape }}</p>
        </div>` + emailLayoutEnd,
		text: `New Contact Form Submission

Name: {{ name }}
Email: {{ email }}
Company: {{ company | default: "Not provided" }}
Subject: {{ subject | default: "Not provided" }}
Submitted: {{ submitted_at }}

Message:
{{ message }}`,
	},
	TemplateServiceRequestAdmin: {
		subject: `New Service Request: {{ solution }} from {{ name }}`,
		html: emailLayoutStart + `        <h2 style="color: #1C5D99;">New Service Request</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Solution:</strong> {{ solution | escape }}</p>
            <p><strong>Name:</strong> {{ name | escape }}</p>
            <p><strong>Email:</strong> <a href="mailto:{{ email | escape }}">{{ email | escape }}</a></p>
            <p><strong>Company:</strong> {{ company | default: "Not provided" | escape }}</p>
            <p><strong>Phone:</strong> {{ phone | default: "Not provided" | escape }}</p>
        </div>
        {% if message != "" %}<div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Message:</h3>
            <p style="white-space: pre-wrap;">{{ message | escape }}</p>
        </div>{% endif %}` + emailLayoutEnd,
		text: `New Service Request

Solution: {{ solution }}
Name: {{ name }}
Email: {{ email }}
Company: {{ company | default: "Not provided" }}
Phone: {{ phone | default: "Not provided" }}
Submitted: {{ submitted_at }}
{% if message != "" %}
Message:
{{ message }}{% endif %}`,
	},
	TemplateTechnicalInquiryAdmin: {
		subject: `New Technical Inquiry {{ reference_id }}: {{ subject }}`,
		html: emailLayoutStart + `        <h2 style="color: #1C5D99;">New Technical Inquiry</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Reference:</strong> {{ reference_id | escape }}</p>
            <p><strong>Name:</strong> {% if title != "" %}{{ title | escape }} {% endif %}{{ name | escape }}</p>
            <p><strong>Email:</strong> <a href="mailto:{{ email | escape }}">{{ email | escape }}</a></p>
            <p><strong>Phone:</strong> {{ phone | default: "Not provided" | escape }}</p>
            <p><strong>Company:</strong> {{ company | default: "Not provided" | escape }}</p>
            <p><strong>Job title:</strong> {{ job_title | default: "Not provided" | escape }}</p>
            <p><strong>Subject:</strong> {{ subject | escape }}{% if subcategory != "" %} / {{ subcategory | escape }}{% endif %}</p>
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Background:</h3>
            <p style="white-space: pre-wrap;">{{ background | escape }}</p>
            {% if question != "" %}<h3 style="color: #0D1A2D;">Question:</h3>
            <p style="white-space: pre-wrap;">{{ question | escape }}</p>{% endif %}
            {% if additional_info != "" %}<h3 style="color: #0D1A2D;">Additional information:</h3>
            <p style="white-space: pre-wrap;">{{ additional_info | escape }}</p>{% endif %}
        </div>` + emailLayoutEnd,
		text: `New Technical Inquiry {{ reference_id }}

Name: {{ name }}
Email: {{ email }}
Phone: {{ phone | default: "Not provided" }}
Company: {{ company | default: "Not provided" }}
Job title: {{ job_title | default: "Not provided" }}
Subject: {{ subject }}{% if subcategory != "" %} / {{ subcategory }}{% endif %}
Submitted: {{ submitted_at }}

Background:
{{ background }}
{% if question != "" %}
Question:
{{ question }}
{% endif %}{% if additional_info != "" %}
Additional information:
{{ additional_info }}{% endif %}`,
	},
	TemplateTechnicalInquiryAck: {
		subject: `We received your technical inquiry ({{ reference_id }})`,
		html: emailLayoutStart + `        <h2 style="color: #1C5D99;">Thank you, {{ first_name | default: name | escape }}</h2>
        <p>We have received your technical inquiry about <strong>{{ subject | escape }}</strong>.
        One of our specialists will review it and get back to you.</p>
        <p>Your reference number is <strong>{{ reference_id | escape }}</strong>. Please quote it if you contact us about this inquiry.</p>
        <p>Best regards,<br>The Brightbooks Team</p>` + emailLayoutEnd,
		text: `Thank you, {{ first_name | default: name }}

We have received your technical inquiry about "{{ subject }}".
One of our specialists will review it and get back to you.

Your reference number is {{ reference_id }}. Please quote it if you contact us about this inquiry.

Best regards,
The Brightbooks Team`,
	},
}
