package crypto

import (
	"fmt"
	"os"
)

// envKeyring reads the key from FORESTFOCUS_DB_KEY and never writes
type envKeyring struct{}

func (envKeyring) GetKey(string) (string, error) {
	key := os.Getenv(EnvKey)
	if key == "" {
		return "", fmt.Errorf("%s not set: %w", EnvKey, ErrKeyNotFound)
	}
	return key, nil
}

func (envKeyring) SetKey(string, string) error { return ErrReadOnly }
