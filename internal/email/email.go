// Package email provides email sending functionality
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
)

// Config holds email configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// Service handles email sending
type Service struct {
	config    *Config
	templates map[string]*template.Template
}

// NewService creates a new email service
func NewService(config *Config) *Service {
	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

// Email represents an email message
type Email struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	Body     string
	HTMLBody string
}

// InquiryEmailData holds data for a single inquiry notification
type InquiryEmailData struct {
	ID          string
	Name        string
	Email       string
	Company     string
	ProjectType string
	Budget      string
	Deadline    string
	Details     string
	Consent     bool
	ReceivedAt  string
}

// DigestEmailData holds data for the daily inquiry digest
type DigestEmailData struct {
	Period    string
	Inquiries []InquiryEmailData
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {
	// New inquiry template
	s.templates["inquiry_received"] = template.Must(template.New("inquiry_received").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .row { margin: 6px 0; }
        .label { color: #6b7280; font-size: 13px; }
        .details { background: white; border-radius: 6px; padding: 16px; margin-top: 16px; white-space: pre-wrap; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>New inquiry: {{.ProjectType}}</h2>
    </div>
    <div class="content">
        <div class="row"><span class="label">From</span><br><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;</div>
        {{if .Company}}<div class="row"><span class="label">Company</span><br>{{.Company}}</div>{{end}}
        {{if .Budget}}<div class="row"><span class="label">Budget</span><br>{{.Budget}}</div>{{end}}
        {{if .Deadline}}<div class="row"><span class="label">Deadline</span><br>{{.Deadline}}</div>{{end}}
        <div class="row"><span class="label">Consent to contact</span><br>{{if .Consent}}Yes{{else}}No{{end}}</div>
        {{if .Details}}<div class="details">{{.Details}}</div>{{end}}
    </div>
    <div class="footer">
        Inquiry {{.ID}} • received {{.ReceivedAt}}
    </div>
</div>
</body>
</html>
`))

	// Daily digest template
	s.templates["inquiry_digest"] = template.Must(template.New("inquiry_digest").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .card { background: white; border-radius: 6px; padding: 12px 16px; margin: 12px 0; }
        .muted { color: #6b7280; font-size: 13px; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>{{len .Inquiries}} new inquiries</h2>
        <div>{{.Period}}</div>
    </div>
    <div class="content">
        {{range .Inquiries}}
        <div class="card">
            <strong>{{.Name}}</strong> &lt;{{.Email}}&gt; — {{.ProjectType}}
            <div class="muted">{{if .Company}}{{.Company}} • {{end}}{{if .Budget}}{{.Budget}} • {{end}}{{.ReceivedAt}}</div>
        </div>
        {{end}}
    </div>
</div>
</body>
</html>
`))
}

// Enabled reports whether an SMTP host is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.config != nil && s.config.Host != ""
}

// Send sends an email
func (s *Service) Send(email *Email) error {
	if !s.Enabled() {
		logger.Log.Debug("[Email] Email not configured, skipping send")
		return nil
	}

	msg := s.buildMessage(email)

	// Build recipient list
	recipients := append([]string{}, email.To...)
	recipients = append(recipients, email.CC...)
	recipients = append(recipients, email.BCC...)

	// Create auth
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if s.config.UseTLS {
		// TLS connection
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("TLS dial error: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			return fmt.Errorf("SMTP client error: %w", err)
		}
		defer client.Close()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("auth error: %w", err)
		}

		if err = client.Mail(s.config.From); err != nil {
			return fmt.Errorf("mail error: %w", err)
		}

		for _, rcpt := range recipients {
			if err = client.Rcpt(rcpt); err != nil {
				return fmt.Errorf("rcpt error: %w", err)
			}
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("data error: %w", err)
		}

		if _, err = w.Write(msg); err != nil {
			return fmt.Errorf("write error: %w", err)
		}

		if err = w.Close(); err != nil {
			return fmt.Errorf("close error: %w", err)
		}

		return client.Quit()
	}

	// Non-TLS
	return smtp.SendMail(addr, auth, s.config.From, recipients, msg)
}

func (s *Service) buildMessage(email *Email) []byte {
	var msg bytes.Buffer

	// Headers
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	if len(email.CC) > 0 {
		msg.WriteString(fmt.Sprintf("Cc: %s\r\n", strings.Join(email.CC, ", ")))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.Body)
	}
	return msg.Bytes()
}

// render executes a named template
func (s *Service) render(templateName string, data any) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

// SendWithTemplate sends an email using a template
func (s *Service) SendWithTemplate(to []string, subject, templateName string, data any) error {
	body, err := s.render(templateName, data)
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	})
}

// SendInquiryReceived notifies the site owner about a new contact-form inquiry
func (s *Service) SendInquiryReceived(to string, data InquiryEmailData) error {
	subject := fmt.Sprintf("New inquiry from %s (%s)", data.Name, data.ProjectType)
	return s.SendWithTemplate([]string{to}, subject, "inquiry_received", data)
}

// SendInquiryDigest sends the periodic summary of recent inquiries
func (s *Service) SendInquiryDigest(to string, data DigestEmailData) error {
	subject := fmt.Sprintf("Inquiry digest: %d new", len(data.Inquiries))
	return s.SendWithTemplate([]string{to}, subject, "inquiry_digest", data)
}
