package main

import (
	"fmt"
	"os"

	"github.com/gmail-manager/cli/pkgs/config"
	"github.com/gmail-manager/cli/pkgs/gmail"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches the single command for this invocation. It returns
// the process exit code instead of calling os.Exit so that the
// deferred session teardown runs on every exit path, including
// reported failures.
func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "version", "--version":
		fmt.Printf("gmail-manager v%s\n", version)
		return 0
	}

	creds, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Create %s next to the binary:\n", config.DefaultPath)
		fmt.Fprintf(os.Stderr, "  {\"email\": \"you@gmail.com\", \"app_password\": \"your-app-password\"}\n")
		return 1
	}

	sess := gmail.NewSession(*creds)
	defer sess.Close()

	switch cmd {
	case "list":
		return handleList(sess, parseListFlags(cmdArgs))
	case "search":
		return handleSearch(sess, parseSearchFlags(cmdArgs))
	case "send":
		return handleSend(sess, parseSendFlags(cmdArgs))
	case "folders":
		return handleFolders(sess)
	case "mark-read":
		return handleMarkRead(sess, cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", cmd)
		return 1
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gmail-manager v%s - Manage a Gmail account over IMAP/SMTP

Usage:
  gmail-manager <command> [arguments]

Commands:
  list [count] [--unread] [--folder <name>]
        Show the latest messages (default 10); --unread restricts the
        listing to unseen messages.
  search <query> [--folder <name>]
        Print full details of every message whose subject or sender
        contains <query>.
  send <to> <subject> <body> [--html]
        Send a message; <to> may be comma-separated for multiple
        recipients, --html sends the body as HTML.
  folders
        List all mailboxes on the server.
  mark-read <id>
        Mark a message (by its listed id) as read.
  help
        Show this help.

Configuration:
  Credentials are read once at startup from %s:
    {"email": "you@gmail.com", "app_password": "your-app-password"}
  The app password is a Google application-specific password, not the
  account password.
`, version, config.DefaultPath)
}
