package gmail

import (
	"net"
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-imap/v2/imapserver"
	"github.com/emersion/go-imap/v2/imapserver/imapmemserver"

	"github.com/gmail-manager/cli/pkgs/config"
)

const (
	testEmail    = "tester@gmail.com"
	testPassword = "app-password-123"
)

// newTestIMAPServer starts an in-memory IMAP server and returns its
// listen address.
func newTestIMAPServer(t *testing.T) string {
	t.Helper()

	memSrv := imapmemserver.New()
	user := imapmemserver.NewUser(testEmail, testPassword)
	user.Create("INBOX", nil)
	memSrv.AddUser(user)

	srv := imapserver.New(&imapserver.Options{
		NewSession: func(_ *imapserver.Conn) (imapserver.Session, *imapserver.GreetingData, error) {
			return memSrv.NewSession(), nil, nil
		},
		InsecureAuth: true,
		Caps: imap.CapSet{
			imap.CapIMAP4rev1: {},
		},
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	go srv.Serve(ln)
	t.Cleanup(func() { srv.Close() })

	return ln.Addr().String()
}

// appendTestMail appends a raw RFC 5322 message to the given mailbox
// via a direct IMAP client, optionally with initial flags.
func appendTestMail(t *testing.T, addr, mailbox, rawMsg string, flags ...imap.Flag) {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	c := imapclient.New(conn, nil)
	if err := c.Login(testEmail, testPassword).Wait(); err != nil {
		t.Fatal(err)
	}

	var opts *imap.AppendOptions
	if len(flags) > 0 {
		opts = &imap.AppendOptions{Flags: flags}
	}
	appendCmd := c.Append(mailbox, int64(len(rawMsg)), opts)
	if _, err := appendCmd.Write([]byte(rawMsg)); err != nil {
		t.Fatal(err)
	}
	if err := appendCmd.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := appendCmd.Wait(); err != nil {
		t.Fatal(err)
	}
	c.Close()
}

// newTestSession creates a Session pointed at test servers. Either
// address may be empty when the corresponding protocol is unused.
func newTestSession(t *testing.T, imapAddr, smtpAddr string) *Session {
	t.Helper()

	sess := NewSessionWithOptions(config.Credentials{
		Email:       testEmail,
		AppPassword: testPassword,
	}, Options{
		IMAPAddr: imapAddr,
		SMTPAddr: smtpAddr,
	})
	t.Cleanup(sess.Close)
	return sess
}

// testMailPlain is a minimal single-part text message.
const testMailPlain = "MIME-Version: 1.0\r\n" +
	"From: sender@example.com\r\n" +
	"To: tester@gmail.com\r\n" +
	"Subject: Test Subject\r\n" +
	"Date: Mon, 10 Feb 2026 08:00:00 +0000\r\n" +
	"Message-Id: <plain-1@example.com>\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Hello, World!"

// testMailEncoded carries RFC 2047 encoded Subject and From headers.
const testMailEncoded = "MIME-Version: 1.0\r\n" +
	"From: =?utf-8?q?Caf=C3=A9_Owner?= <cafe@example.com>\r\n" +
	"To: tester@gmail.com\r\n" +
	"Subject: =?utf-8?q?Caf=C3=A9?= opening\r\n" +
	"Date: Tue, 11 Feb 2026 09:30:00 +0000\r\n" +
	"Message-Id: <encoded-1@example.com>\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Come by for coffee."

// testMailInvoice is used for subject search.
const testMailInvoice = "MIME-Version: 1.0\r\n" +
	"From: billing@example.com\r\n" +
	"To: tester@gmail.com\r\n" +
	"Subject: Invoice 2026-02\r\n" +
	"Date: Wed, 12 Feb 2026 10:00:00 +0000\r\n" +
	"Message-Id: <invoice-1@example.com>\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Your invoice is attached below.\r\n"

// testMailHTMLOnly is multipart with an HTML part and no plain part.
const testMailHTMLOnly = "MIME-Version: 1.0\r\n" +
	"From: sender@example.com\r\n" +
	"To: tester@gmail.com\r\n" +
	"Subject: HTML Only\r\n" +
	"Date: Thu, 13 Feb 2026 11:00:00 +0000\r\n" +
	"Message-Id: <htmlonly-1@example.com>\r\n" +
	"Content-Type: multipart/alternative; boundary=\"HTMLONLY\"\r\n" +
	"\r\n" +
	"--HTMLONLY\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<p>No plain part here</p>\r\n" +
	"--HTMLONLY--\r\n"

// testMailNested hides the plain part inside a nested
// multipart/alternative.
const testMailNested = "MIME-Version: 1.0\r\n" +
	"From: sender@example.com\r\n" +
	"To: tester@gmail.com\r\n" +
	"Subject: Nested Multipart\r\n" +
	"Date: Fri, 14 Feb 2026 12:00:00 +0000\r\n" +
	"Message-Id: <nested-1@example.com>\r\n" +
	"Content-Type: multipart/mixed; boundary=\"OUTER\"\r\n" +
	"\r\n" +
	"--OUTER\r\n" +
	"Content-Type: multipart/alternative; boundary=\"INNER\"\r\n" +
	"\r\n" +
	"--INNER\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Plain version\r\n" +
	"--INNER\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<p>HTML version</p>\r\n" +
	"--INNER--\r\n" +
	"--OUTER--\r\n"
