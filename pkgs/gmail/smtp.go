package gmail

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
)

// SendEmail builds a multipart message with a single inline part
// (text/html when html is set, text/plain otherwise) and submits it in
// one round-trip, connecting SMTP lazily. The From header is the
// configured account address; multiple recipients are joined with
// ", " in the To header. The send is atomic from the caller's
// perspective: it either succeeds or fails as a whole.
func (s *Session) SendEmail(to []string, subject, body string, html bool) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients given")
	}
	if err := s.ensureSMTP(); err != nil {
		return err
	}

	msg, err := buildMessage(s.creds.Email, to, subject, body, html)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	if err := s.smtp.SendMail(s.creds.Email, to, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage serializes an outgoing message with go-message's mail
// writer.
func buildMessage(from string, to []string, subject, body string, html bool) (*bytes.Buffer, error) {
	var buf bytes.Buffer

	var header mail.Header
	header.SetDate(time.Now())
	header.SetSubject(subject)
	header.SetAddressList("From", []*mail.Address{{Address: from}})

	toAddrs := make([]*mail.Address, len(to))
	for i, addr := range to {
		toAddrs[i] = &mail.Address{Address: addr}
	}
	header.SetAddressList("To", toAddrs)
	header.Set("Message-ID", generateMessageID(from))

	iw, err := mail.CreateInlineWriter(&buf, header)
	if err != nil {
		return nil, err
	}

	var h mail.InlineHeader
	contentType := "text/plain"
	if html {
		contentType = "text/html"
	}
	h.SetContentType(contentType, map[string]string{"charset": "utf-8"})

	w, err := iw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte(body)); err != nil {
		return nil, err
	}
	w.Close()

	if err := iw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// generateMessageID produces an RFC 5322 compliant Message-ID using the
// domain of the sender address. Format: <timestamp.random@domain>
func generateMessageID(fromEmail string) string {
	domain := "localhost"
	if idx := strings.Index(fromEmail, "@"); idx >= 0 {
		domain = fromEmail[idx+1:]
	}

	b := make([]byte, 8)
	_, _ = rand.Read(b)

	return fmt.Sprintf("<%d.%s@%s>", time.Now().UnixNano(), hex.EncodeToString(b), domain)
}
