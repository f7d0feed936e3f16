package contact

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"construlab/config"
	"construlab/internal/infra/mailer"
	"construlab/internal/testutil"
)

type captureMailer struct{ sent []mailer.Message }

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func setup(t *testing.T, to string) (*gin.Engine, *captureMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mail := &captureMailer{}
	prevMailer, prevTo := mailer.Default, config.CONTACT_TO
	mailer.Default, config.CONTACT_TO = mail, to
	t.Cleanup(func() { mailer.Default, config.CONTACT_TO = prevMailer, prevTo })

	r := gin.New()
	r.POST("/contact", Send)
	return r, mail
}

func TestSend(t *testing.T) {
	r, mail := setup(t, "team@construlab.test")

	w := testutil.Do(t, r, http.MethodPost, "/contact", gin.H{
		"name":    "Rui",
		"email":   "rui@example.com",
		"subject": "Quote",
		"message": "Hello <script>alert(1)</script>\nsecond line",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(mail.sent))
	}
	msg := mail.sent[0]
	if msg.To != "team@construlab.test" || msg.ReplyTo != "rui@example.com" {
		t.Fatalf("unexpected routing: %+v", msg)
	}
	if strings.Contains(msg.Body, "<script>") || !strings.Contains(msg.Body, "&lt;script&gt;") {
		t.Fatalf("message must be escaped: %s", msg.Body)
	}
	if !strings.Contains(msg.Body, "<br>second line") {
		t.Fatalf("expected line breaks preserved: %s", msg.Body)
	}
}

func TestSend_PlainTextFieldsEscapedOnce(t *testing.T) {
	r, mail := setup(t, "team@construlab.test")

	w := testutil.Do(t, r, http.MethodPost, "/contact", gin.H{
		"name":    "O'Brien & Filhos",
		"email":   "ob@example.com",
		"subject": "Laje <b>& pilares</b>",
		"message": "ok",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	msg := mail.sent[0]
	if msg.Subject != "[Contact] Laje & pilares" {
		t.Fatalf("subject should be plain text, got %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "O&#39;Brien &amp; Filhos") || strings.Contains(msg.Body, "&amp;amp;") || strings.Contains(msg.Body, "&amp;#39;") {
		t.Fatalf("name should be escaped once: %s", msg.Body)
	}
}

func TestSend_Validation(t *testing.T) {
	r, mail := setup(t, "team@construlab.test")

	cases := []gin.H{
		{"name": "Rui", "email": "rui@example.com", "subject": "Quote"},
		{"name": "Rui", "email": "not-an-email", "subject": "Quote", "message": "hi"},
		{"name": "<b></b>", "email": "rui@example.com", "subject": "Quote", "message": "hi"},
	}
	for _, body := range cases {
		if w := testutil.Do(t, r, http.MethodPost, "/contact", body, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, w.Code)
		}
	}
	if len(mail.sent) != 0 {
		t.Fatalf("nothing should be sent on validation errors")
	}
}

func TestSend_NotConfigured(t *testing.T) {
	r, _ := setup(t, "")
	w := testutil.Do(t, r, http.MethodPost, "/contact", gin.H{
		"name": "Rui", "email": "rui@example.com", "subject": "Quote", "message": "hi",
	}, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
