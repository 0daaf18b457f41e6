package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// systemKeyring uses the OS secret store: Keychain on macOS, Secret Service
// on Linux, Credential Manager on Windows
type systemKeyring struct{}

func (systemKeyring) GetKey(account string) (string, error) {
	key, err := keyring.Get(ServiceName, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", account, ErrKeyNotFound)
		}
		return "", fmt.Errorf("failed to retrieve key from keyring: %w", err)
	}

	if key == "" {
		return "", fmt.Errorf("%s: empty key: %w", account, ErrKeyNotFound)
	}

	return key, nil
}

func (systemKeyring) SetKey(account, password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	if err := keyring.Set(ServiceName, account, password); err != nil {
		return fmt.Errorf("failed to store key in keyring: %w", err)
	}

	return nil
}
