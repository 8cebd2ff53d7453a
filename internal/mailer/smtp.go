package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	gomail "gopkg.in/mail.v2"
)

type smtpClient struct {
	dialer    *gomail.Dialer
	fromEmail string
}

// NewSMTPClient builds a mailer over plain SMTP credentials. Works with
// any transactional provider exposing an SMTP endpoint.
func NewSMTPClient(host string, port int, username, password, fromEmail string) (Client, error) {
	if host == "" || fromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	return &smtpClient{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}, nil
}

// Send renders the named template's subject and body blocks and delivers
// the message, retrying transient failures a few times with backoff.
func (c *smtpClient) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, fmt.Errorf("render subject: %w", err)
	}
	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, fmt.Errorf("render body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.fromEmail, FromName)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/html", body.String())

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if lastErr = c.dialer.DialAndSend(msg); lastErr == nil {
			return 200, nil
		}
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return -1, fmt.Errorf("send after %d attempts: %w", maxRetries, lastErr)
}
