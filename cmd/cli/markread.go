package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gmail-manager/cli/pkgs/gmail"
)

func handleMarkRead(sess *gmail.Session, args []string) int {
	if len(args) < 1 {
		fatal("mark-read: usage: mark-read <id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || id == 0 {
		fatal("mark-read: invalid message id '%s'", args[0])
	}

	if err := sess.MarkAsRead(uint32(id)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: mark-read: %v\n", err)
		return 1
	}
	fmt.Printf("Message %d marked as read\n", id)
	return 0
}
