package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/gmail-manager/cli/pkgs/gmail"
)

type sendFlags struct {
	to      []string
	subject string
	body    string
	html    bool
}

func parseSendFlags(args []string) sendFlags {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	var f sendFlags
	fs.BoolVar(&f.html, "html", false, "Send the body as HTML")
	if err := fs.Parse(args); err != nil {
		fatal("send: %v", err)
	}
	rest := fs.Args()
	if len(rest) < 3 {
		fatal("send: usage: send <to> <subject> <body>")
	}
	f.to = splitRecipients(rest[0])
	if len(f.to) == 0 {
		fatal("send: no recipients given")
	}
	f.subject = rest[1]
	f.body = rest[2]
	return f
}

// splitRecipients splits a comma-separated address string.
func splitRecipients(s string) []string {
	parts := strings.Split(s, ",")
	addrs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			addrs = append(addrs, part)
		}
	}
	return addrs
}

func handleSend(sess *gmail.Session, f sendFlags) int {
	if err := sess.SendEmail(f.to, f.subject, f.body, f.html); err != nil {
		fmt.Fprintf(os.Stderr, "Error: send: %v\n", err)
		return 1
	}
	fmt.Printf("Email sent to: %s\n", strings.Join(f.to, ", "))
	return 0
}
