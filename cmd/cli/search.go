package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/gmail-manager/cli/pkgs/gmail"
)

type searchFlags struct {
	query  string
	folder string
}

func parseSearchFlags(args []string) searchFlags {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	var f searchFlags
	fs.StringVar(&f.folder, "folder", gmail.DefaultMailbox, "Mailbox to search")
	if err := fs.Parse(args); err != nil {
		fatal("search: %v", err)
	}
	rest := fs.Args()
	if len(rest) < 1 {
		fatal("search: a query argument is required")
	}
	f.query = rest[0]
	return f
}

func handleSearch(sess *gmail.Session, f searchFlags) int {
	details, err := sess.SearchEmails(f.query, f.folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: search: %v\n", err)
		return 1
	}

	fmt.Printf("Found %d message(s) matching '%s' in %s\n", len(details), f.query, f.folder)

	for i, d := range details {
		fmt.Printf("\n[%d] id %d\n", i+1, d.SeqNum)
		fmt.Printf("    Subject: %s\n", d.Subject)
		fmt.Printf("    From:    %s\n", d.From)
		fmt.Printf("    Date:    %s\n", d.Date)
		fmt.Printf("    Preview: %s\n", truncate(d.Body, 100))
	}
	return 0
}
