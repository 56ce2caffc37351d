package cli

import (
	"fmt"
	"os"
	"strings"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// serverEnv overrides the default server URL
const serverEnv = "SOS_SERVER"

// Config holds settings shared by all commands
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns the defaults, with the server URL taken from the
// environment when set
func DefaultConfig() *Config {
	server := os.Getenv(serverEnv)
	if server == "" {
		server = "http://localhost:8080"
	}
	return &Config{
		ServerURL: server,
		Output:    OutputText,
	}
}

// Validate normalizes the output format and rejects unknown ones
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
}
