package main

import (
	"fmt"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/gmail-manager/cli/pkgs/gmail"
)

type listFlags struct {
	count  int
	folder string
	unread bool
}

func parseListFlags(args []string) listFlags {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	f := listFlags{count: 10}
	fs.BoolVar(&f.unread, "unread", false, "Show only unread messages")
	fs.StringVar(&f.folder, "folder", gmail.DefaultMailbox, "Mailbox to list")
	if err := fs.Parse(args); err != nil {
		fatal("list: %v", err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n <= 0 {
			fatal("list: invalid count '%s'", rest[0])
		}
		f.count = n
	}
	return f
}

func handleList(sess *gmail.Session, f listFlags) int {
	summaries, err := sess.GetEmails(f.folder, f.count, f.unread)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: list: %v\n", err)
		return 1
	}

	label := ""
	if f.unread {
		label = " (unread)"
	}
	fmt.Printf("Showing %d message(s)%s from %s\n", len(summaries), label, f.folder)

	for i, m := range summaries {
		fmt.Printf("\n[%d] id %d\n", i+1, m.SeqNum)
		fmt.Printf("    Subject: %s\n", m.Subject)
		fmt.Printf("    From:    %s\n", m.From)
		fmt.Printf("    Date:    %s\n", m.Date)
	}
	return 0
}
