package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/kaifdev/portfolio-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends the contact-form notification email. Sending is best-effort:
// callers log failures and carry on, the submission itself is never rolled
// back because of a mail error.
type Mailer interface {
	// SendContactNotification emails the admin about a stored submission
	SendContactNotification(contact models.Contact) error
}

// SMTPConfig holds the settings for the outbound SMTP connection
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

// smtpMailer delivers notifications over SMTP via gomail
type smtpMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a Mailer backed by the given SMTP configuration
func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendContactNotification(contact models.Contact) error {
	if m.cfg.Host == "" || m.cfg.AdminEmail == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetHeader("To", m.cfg.AdminEmail)
	msg.SetHeader("Reply-To", contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Contact: %s - %s", contact.Name, contact.Subject))
	msg.SetBody("text/html", BuildNotificationBody(contact, time.Now()))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

// BuildNotificationBody renders the HTML notification with every submitted
// field, the record id and a server-side timestamp
func BuildNotificationBody(contact models.Contact, now time.Time) string {
	sourceLabel := "Home Page"
	if contact.Source == models.SourceContact {
		sourceLabel = "Contact Page"
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body style="font-family: Arial, sans-serif; color: #333;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	fmt.Fprintf(&b, `<p>From: %s</p>`, sourceLabel)

	b.WriteString(`<h3>Contact Information</h3><ul>`)
	fmt.Fprintf(&b, `<li><b>Name:</b> %s</li>`, html.EscapeString(contact.Name))
	fmt.Fprintf(&b, `<li><b>Email:</b> <a href="mailto:%s">%s</a></li>`,
		html.EscapeString(contact.Email), html.EscapeString(contact.Email))
	if contact.Phone != "" {
		fmt.Fprintf(&b, `<li><b>Phone:</b> <a href="tel:%s">%s</a></li>`,
			html.EscapeString(contact.Phone), html.EscapeString(contact.Phone))
	}
	if contact.ContactMethod != "" {
		fmt.Fprintf(&b, `<li><b>Preferred Contact:</b> %s</li>`, html.EscapeString(contact.ContactMethod))
	}
	b.WriteString(`</ul>`)

	b.WriteString(`<h3>Message Details</h3><ul>`)
	fmt.Fprintf(&b, `<li><b>Subject:</b> %s</li>`, html.EscapeString(contact.Subject))
	fmt.Fprintf(&b, `<li><b>Message:</b><br>%s</li>`,
		strings.ReplaceAll(html.EscapeString(contact.Message), "\n", "<br>"))
	b.WriteString(`</ul>`)

	b.WriteString(`<h3>Additional Info</h3><ul>`)
	fmt.Fprintf(&b, `<li><b>Submission Time:</b> %s</li>`, now.UTC().Format(time.RFC1123))
	fmt.Fprintf(&b, `<li><b>Form Source:</b> %s</li>`, sourceLabel)
	fmt.Fprintf(&b, `<li><b>Contact ID:</b> %s</li>`, html.EscapeString(contact.ID))
	b.WriteString(`</ul>`)

	b.WriteString(`<p style="font-size: 12px; color: #718096;">This email was sent from your portfolio website contact form.</p>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

// noopMailer is used in mock mode and in tests where no SMTP server exists
type noopMailer struct{}

// NewNoopMailer returns a Mailer that only logs
func NewNoopMailer() Mailer {
	return &noopMailer{}
}

func (noopMailer) SendContactNotification(contact models.Contact) error {
	log.WithFields(log.Fields{
		"contact_id": contact.ID,
		"source":     contact.Source,
	}).Info("Mail delivery disabled, skipping contact notification")
	return nil
}
