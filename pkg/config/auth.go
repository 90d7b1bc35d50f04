package config

import (
	"fmt"
	"strings"
)

// AuthConfig configures the optional API key guard. The guard is only wired
// into the router when Enabled is true.
type AuthConfig struct {
	Enabled bool   `koanf:"enabled"`
	APIKey  string `koanf:"apiKey"`
}

// String returns a string representation of the auth configuration.
// The API key itself is never printed.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskSecret(c.APIKey)))
	return b.String()
}

func (c *AuthConfig) Validate() error {
	if c.Enabled && c.APIKey == "" {
		return fmt.Errorf("auth is enabled but API key is not configured")
	}
	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}
