// Package mailer composes and sends the release-announcement emails.
package mailer

import (
	"bytes"
	"html/template"

	"github.com/TWhiteShadow/gamevault/internal/models"
	"gopkg.in/gomail.v2"
)

// Sender sends one composed message to one recipient.
type Sender interface {
	Send(to, subject string, games []models.VideoGame) error
}

var bodyTemplate = template.Must(template.New("newsletter").Parse(`<html>
<body>
<h1>{{ .Subject }}</h1>
{{ if .Games }}
<ul>
{{ range .Games }}
  <li><strong>{{ .Title }}</strong> ({{ .Editor.Name }}) &mdash; {{ .ReleaseDate.Format "2006-01-02" }}<br>{{ .Description }}</li>
{{ end }}
</ul>
{{ else }}
<p>Pas de nouvelles sorties cette semaine.</p>
{{ end }}
</body>
</html>`))

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject string, games []models.VideoGame) error {
	var body bytes.Buffer
	err := bodyTemplate.Execute(&body, struct {
		Subject string
		Games   []models.VideoGame
	}{Subject: subject, Games: games})
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	return m.dialer.DialAndSend(msg)
}
