package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

const sendAttempts = 3

type Mailer struct {
	dialer *mail.Dialer
	sender string
}

func New(host string, port int, username, password, sender string) Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return Mailer{
		dialer: dialer,
		sender: sender,
	}
}

// Send renders templateFile with data and mails it to recipient, retrying a failed dial.
func (m Mailer) Send(recipient, templateFile string, data any) error {
	subject, plainBody, htmlBody, err := render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	for i := 1; i <= sendAttempts; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}

	return fmt.Errorf("send %s to %s: %w", templateFile, recipient, err)
}

func render(templateFile string, data any) (subject, plainBody, htmlBody string, err error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", "", err
	}

	parts := []struct {
		name string
		dest *string
	}{
		{"subject", &subject},
		{"plainBody", &plainBody},
		{"htmlBody", &htmlBody},
	}
	for _, p := range parts {
		buf := new(bytes.Buffer)
		if err := tmpl.ExecuteTemplate(buf, p.name, data); err != nil {
			return "", "", "", err
		}
		*p.dest = buf.String()
	}

	return subject, plainBody, htmlBody, nil
}
