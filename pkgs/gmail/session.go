// Package gmail manages one authenticated IMAP connection and one
// authenticated SMTP connection to a single Gmail account.
package gmail

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/gmail-manager/cli/pkgs/config"
)

const (
	// GmailIMAPAddr is the Gmail IMAP endpoint (implicit TLS).
	GmailIMAPAddr = "imap.gmail.com:993"
	// GmailSMTPAddr is the Gmail SMTP submission endpoint (implicit TLS).
	GmailSMTPAddr = "smtp.gmail.com:465"

	// DefaultMailbox is selected when no mailbox is given.
	DefaultMailbox = "INBOX"
)

// Options holds the endpoints a Session talks to. NewSession fills in
// the Gmail defaults; tests point it at local servers.
type Options struct {
	IMAPAddr string
	SMTPAddr string

	// SSL enables implicit TLS on both connections.
	SSL bool
}

// Session owns at most one open IMAP connection and at most one open
// SMTP connection, each established lazily on first use. A Session is
// not safe for concurrent use.
type Session struct {
	creds config.Credentials
	opts  Options

	imap *imapclient.Client
	smtp *smtp.Client

	// selected tracks the currently selected IMAP mailbox.
	selected string
}

// NewSession creates a session for the given account against the Gmail
// servers.
func NewSession(creds config.Credentials) *Session {
	return NewSessionWithOptions(creds, Options{
		IMAPAddr: GmailIMAPAddr,
		SMTPAddr: GmailSMTPAddr,
		SSL:      true,
	})
}

// NewSessionWithOptions creates a session against custom endpoints.
func NewSessionWithOptions(creds config.Credentials, opts Options) *Session {
	return &Session{
		creds: creds,
		opts:  opts,
	}
}

// ConnectIMAP establishes and authenticates the IMAP connection. On
// failure the session keeps no connection, so a later operation will
// dial again. There is no automatic retry.
func (s *Session) ConnectIMAP() error {
	var c *imapclient.Client
	var err error

	if s.opts.SSL {
		c, err = imapclient.DialTLS(s.opts.IMAPAddr, nil)
	} else {
		c, err = imapclient.DialInsecure(s.opts.IMAPAddr, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to IMAP server %s: %w", s.opts.IMAPAddr, err)
	}

	if err := c.Login(s.creds.Email, s.creds.AppPassword).Wait(); err != nil {
		c.Close()
		return fmt.Errorf("IMAP authentication failed: %w", err)
	}

	s.imap = c
	return nil
}

// ConnectSMTP establishes and authenticates the SMTP connection. Same
// failure contract as ConnectIMAP.
func (s *Session) ConnectSMTP() error {
	var c *smtp.Client
	var err error

	if s.opts.SSL {
		host, _, _ := net.SplitHostPort(s.opts.SMTPAddr)
		c, err = smtp.DialTLS(s.opts.SMTPAddr, &tls.Config{ServerName: host})
	} else {
		c, err = smtp.Dial(s.opts.SMTPAddr)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server %s: %w", s.opts.SMTPAddr, err)
	}

	auth := sasl.NewPlainClient("", s.creds.Email, s.creds.AppPassword)
	if err := c.Auth(auth); err != nil {
		c.Close()
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	s.smtp = c
	return nil
}

// ensureIMAP connects the IMAP side if it is absent.
func (s *Session) ensureIMAP() error {
	if s.imap != nil {
		return nil
	}
	return s.ConnectIMAP()
}

// ensureSMTP connects the SMTP side if it is absent.
func (s *Session) ensureSMTP() error {
	if s.smtp != nil {
		return nil
	}
	return s.ConnectSMTP()
}

// selectMailbox selects the given mailbox, remembering the selection.
func (s *Session) selectMailbox(mailbox string) error {
	if _, err := s.imap.Select(mailbox, nil).Wait(); err != nil {
		return fmt.Errorf("failed to select mailbox %s: %w", mailbox, err)
	}
	s.selected = mailbox
	return nil
}

// Close tears down whichever connections exist. It is idempotent and
// tolerates broken connections: it runs as guaranteed cleanup, so
// errors are swallowed rather than propagated.
func (s *Session) Close() {
	if s.imap != nil {
		_ = s.imap.Logout().Wait()
		_ = s.imap.Close()
		s.imap = nil
		s.selected = ""
	}
	if s.smtp != nil {
		_ = s.smtp.Quit()
		s.smtp = nil
	}
}
