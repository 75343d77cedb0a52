package folio

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestComposeMailStripsHeaderInjection(t *testing.T) {
	m := Message{
		ID:        "abc",
		Name:      "Eve\r\nBcc: victim@example.com",
		Email:     "eve@example.com\nCc: other@example.com",
		Body:      "line one\nline two",
		Language:  "en",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	msg := string(composeMail("site@example.com", "owner@example.com", m))
	headers := msg[:strings.Index(msg, "\r\n\r\n")]
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, "Bcc:") || strings.HasPrefix(line, "Cc:") {
			t.Errorf("injected header %q", line)
		}
	}
	if !strings.Contains(msg, "line one\r\nline two") {
		t.Errorf("body line endings not normalized: %q", msg)
	}
}

func TestSMTPNotifierSends(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Host: "smtp.example.com", Port: 587, User: "site@example.com", Pass: "x"}, "owner@example.com")
	var gotAddr, gotFrom string
	var gotTo []string
	n.send = func(addr string, _ smtp.Auth, from string, to []string, _ []byte) error {
		gotAddr, gotFrom, gotTo = addr, from, to
		return nil
	}
	if err := n.Notify(context.Background(), Message{ID: "1", Name: "A", Email: "a@example.com", Body: "hi"}); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "site@example.com" {
		t.Errorf("addr=%q from=%q", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "owner@example.com" {
		t.Errorf("to = %v", gotTo)
	}
}

func TestSMTPNotifierWrapsErrors(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Host: "smtp.example.com", Port: 25}, "owner@example.com")
	boom := errors.New("boom")
	n.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
	err := n.Notify(context.Background(), Message{})
	if !errors.Is(err, boom) {
		t.Fatalf("Notify error = %v, want wrapped boom", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.Notify(ctx, Message{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Notify with cancelled ctx = %v", err)
	}
}

func TestNewNotifierWithoutHostIsNoop(t *testing.T) {
	n := newNotifier(SiteConfig{}, DeveloperProfile{Email: "x@example.com"})
	if _, ok := n.(nopNotifier); !ok {
		t.Fatalf("newNotifier without host = %T, want nopNotifier", n)
	}
	n = newNotifier(SiteConfig{SMTP: SMTPConfig{Host: "h", Port: 25}}, DeveloperProfile{Email: "x@example.com"})
	s, ok := n.(*SMTPNotifier)
	if !ok {
		t.Fatalf("newNotifier with host = %T", n)
	}
	if s.to != "x@example.com" {
		t.Errorf("recipient = %q, want profile email", s.to)
	}
}
