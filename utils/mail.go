package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/XidanAbds29/huehouse-api/initializers"
)

func SendEmail(emailTo string, emailSubject string, data any, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	cfg := initializers.Cfg
	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.FromEmail,
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		cfg.FromEmail,
		cfg.FromEmailPassword,
		cfg.SMTPHost,
	)

	err = smtp.SendMail(cfg.SMTPAddress, auth, cfg.FromEmail, []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
