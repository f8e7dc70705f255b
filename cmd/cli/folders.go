package main

import (
	"fmt"
	"os"

	"github.com/gmail-manager/cli/pkgs/gmail"
)

func handleFolders(sess *gmail.Session) int {
	names, err := sess.ListMailboxes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: folders: %v\n", err)
		return 1
	}

	fmt.Println("Mailboxes:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return 0
}
