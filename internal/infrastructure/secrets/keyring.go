// Package secrets resolves credentials from the platform credential store so
// no plaintext secret ever lives in configuration or source.
package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
)

// KeyringProvider reads secrets from the OS keyring under a fixed service
// name (Windows Credential Manager, macOS Keychain, Secret Service on Linux).
type KeyringProvider struct {
	service string
}

var _ ports.SecretProvider = (*KeyringProvider)(nil)

// NewKeyringProvider scopes lookups to one keyring service name.
func NewKeyringProvider(service string) *KeyringProvider {
	return &KeyringProvider{service: service}
}

// GetSecret resolves a named secret, e.g. "smtp_password".
func (p *KeyringProvider) GetSecret(name string) (string, error) {
	value, err := keyring.Get(p.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("keyring %s/%s: %w", p.service, name, domain.ErrSecretNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("keyring %s/%s: %v: %w", p.service, name, err, domain.ErrSecretNotFound)
	}
	if value == "" {
		return "", fmt.Errorf("keyring %s/%s is empty: %w", p.service, name, domain.ErrSecretNotFound)
	}
	return value, nil
}
