package services

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"brightbooks/internal/config"
	"brightbooks/internal/util"
)

// EmailMessage is one outgoing email
type EmailMessage struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers a rendered email
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// EmailService renders notification templates and hands them to a Mailer
type EmailService struct {
	cfg       *config.EmailConfig
	mailer    Mailer
	templates *EmailTemplates
}

// NewEmailService creates an email service using the configured provider.
// A disabled service always uses the console mailer.
func NewEmailService(cfg *config.EmailConfig, sesCfg *config.SESConfig) *EmailService {
	var mailer Mailer
	switch {
	case !cfg.Enabled || cfg.Provider == "console":
		mailer = ConsoleMailer{}
	case cfg.Provider == "ses":
		mailer = NewSESMailer(cfg, sesCfg)
	default:
		mailer = NewSMTPMailer(cfg)
	}
	return NewEmailServiceWithMailer(cfg, mailer)
}

// NewEmailServiceWithMailer creates an email service that sends through mailer
func NewEmailServiceWithMailer(cfg *config.EmailConfig, mailer Mailer) *EmailService {
	return &EmailService{
		cfg:       cfg,
		mailer:    mailer,
		templates: NewEmailTemplates(),
	}
}

// IsEnabled returns whether email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}

// AdminEmail returns the address that receives lead notifications
func (s *EmailService) AdminEmail() string {
	return s.cfg.AdminEmail
}

// SendTemplate renders the named template with data and sends it to to
func (s *EmailService) SendTemplate(ctx context.Context, name, to, replyTo string, data map[string]interface{}) error {
	rendered, err := s.templates.Render(name, data)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, &EmailMessage{
		To:       to,
		ReplyTo:  replyTo,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
		TextBody: rendered.Text,
	})
}

// ConsoleMailer logs emails instead of sending them (development)
type ConsoleMailer struct{}

// Send implements Mailer
func (ConsoleMailer) Send(ctx context.Context, msg *EmailMessage) error {
	log.Printf("[EMAIL] Would send to %s: %s", util.RedactEmail(msg.To), msg.Subject)
	return nil
}

// SMTPMailer sends multipart emails through an SMTP relay
type SMTPMailer struct {
	cfg *config.EmailConfig
}

// NewSMTPMailer creates an SMTP mailer
func NewSMTPMailer(cfg *config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send implements Mailer
func (m *SMTPMailer) Send(ctx context.Context, msg *EmailMessage) error {
	// Validate configuration
	if m.cfg.SMTPHost == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{msg.To}, []byte(buildMIMEMessage(m.cfg, msg))); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("[EMAIL] Sent to %s via SMTP", util.RedactEmail(msg.To))
	return nil
}

const mimeBoundary = "----=_NextPart_BrightbooksLead"

// buildMIMEMessage builds a multipart/alternative message with a text part
// and, when present, an HTML part
func buildMIMEMessage(cfg *config.EmailConfig, msg *EmailMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", fromAddress(cfg))
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.TextBody + "\r\n")

	if msg.HTMLBody != "" {
		fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.HTMLBody + "\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)
	return b.String()
}

func fromAddress(cfg *config.EmailConfig) string {
	if cfg.FromName != "" {
		return fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return cfg.FromEmail
}

// SESMailer sends emails via AWS SES using the SDK v2
type SESMailer struct {
	cfg    *config.EmailConfig
	client *sesv2.Client
}

// NewSESMailer creates an SES mailer. Static credentials are used when both
// keys are configured; otherwise the default AWS credential chain applies.
func NewSESMailer(cfg *config.EmailConfig, sesCfg *config.SESConfig) *SESMailer {
	mailer := &SESMailer{cfg: cfg}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(sesCfg.Region)}
	if sesCfg.AccessKey != "" && sesCfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sesCfg.AccessKey, sesCfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Printf("[EMAIL] Warning: failed to initialize AWS config: %v", err)
		return mailer
	}
	mailer.client = sesv2.NewFromConfig(awsCfg)
	return mailer
}

// Send implements Mailer
func (m *SESMailer) Send(ctx context.Context, msg *EmailMessage) error {
	if m.client == nil {
		return fmt.Errorf("SES client not initialized - check credentials")
	}

	body := &types.Body{
		Text: &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String("UTF-8")},
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress(m.cfg)),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	log.Printf("[EMAIL] Sent to %s via SES (id: %s)", util.RedactEmail(msg.To), messageID)
	return nil
}
