package folio

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Notifier tells the site owner about a new contact message.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Message) error { return nil }

// SMTPNotifier mails contact messages to the owner.
type SMTPNotifier struct {
	addr string
	auth smtp.Auth
	from string
	to   string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier returns a notifier that sends through cfg to the address to.
func NewSMTPNotifier(cfg SMTPConfig, to string) *SMTPNotifier {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}
	return &SMTPNotifier{
		addr: cfg.Host + ":" + strconv.Itoa(cfg.Port),
		auth: auth,
		from: from,
		to:   to,
		send: smtp.SendMail,
	}
}

func newNotifier(cfg SiteConfig, profile DeveloperProfile) Notifier {
	if cfg.SMTP.Host == "" {
		return nopNotifier{}
	}
	to := cfg.ContactTo
	if to == "" {
		to = profile.Email
	}
	return NewSMTPNotifier(cfg.SMTP, to)
}

// Notify sends m. net/smtp has no context support, so ctx is only checked
// before dialing.
func (n *SMTPNotifier) Notify(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.send(n.addr, n.auth, n.from, []string{n.to}, composeMail(n.from, n.to, m)); err != nil {
		return fmt.Errorf("folio: send contact mail: %w", err)
	}
	return nil
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func composeMail(from, to string, m Message) []byte {
	subject := mime.QEncoding.Encode("utf-8", "Portfolio contact: "+headerSafe(m.Name))
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(m.Email) + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + m.CreatedAt.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission (%s)\r\n\r\n", m.ID)
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nLanguage: %s\r\n\r\n", m.Name, m.Email, m.Language)
	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
