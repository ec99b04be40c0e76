package secrets

import (
	"fmt"
	"os"
	"strings"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
)

// EnvProvider resolves secrets from environment variables, mainly for local
// runs and tests where no OS keyring is available. The secret name is
// upper-cased with a prefix: "smtp_password" -> "GAZETTE_SMTP_PASSWORD".
type EnvProvider struct {
	prefix string
}

var _ ports.SecretProvider = (*EnvProvider)(nil)

// NewEnvProvider uses the given prefix, defaulting to "GAZETTE".
func NewEnvProvider(prefix string) *EnvProvider {
	if prefix == "" {
		prefix = "GAZETTE"
	}
	return &EnvProvider{prefix: prefix}
}

// GetSecret looks the secret up in the process environment.
func (p *EnvProvider) GetSecret(name string) (string, error) {
	key := p.prefix + "_" + strings.ToUpper(name)
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("env %s: %w", key, domain.ErrSecretNotFound)
}
