// Package config loads the account credentials file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the credentials file read once at startup, resolved
// relative to the working directory.
const DefaultPath = "gmail_config.json"

// Credentials holds the Gmail address and its application-specific
// password (not the account password). Immutable for the process
// lifetime.
type Credentials struct {
	Email       string `json:"email"`
	AppPassword string `json:"app_password"`
}

// Load reads and validates the credentials file. Absence or malformed
// content is a fatal, user-visible error: the caller aborts before any
// network activity.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Validate checks that both credential fields are present.
func (c *Credentials) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	if c.AppPassword == "" {
		return fmt.Errorf("app_password is required")
	}
	return nil
}
