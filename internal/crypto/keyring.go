package crypto

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Keyring stores the passphrase for an encrypted database
type Keyring interface {
	GetKey(account string) (string, error)
	SetKey(account, password string) error
}

const (
	ServiceName = "forestfocus"

	// EnvKey overrides the keyring, for hosts without a secret service
	EnvKey = "FORESTFOCUS_DB_KEY"
)

var (
	ErrKeyNotFound = errors.New("encryption key not found")
	ErrReadOnly    = errors.New("keyring backend is read-only")
)

// AccountFor names the keyring entry for a database file so that separate
// databases get separate keys
func AccountFor(dbPath string) string {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		abs = filepath.Clean(dbPath)
	}
	return "db:" + abs
}

// NewKeyring returns the environment override backed by the system keyring
func NewKeyring() Keyring {
	return &chainKeyring{primary: envKeyring{}, fallback: systemKeyring{}}
}

// chainKeyring reads from primary first; writes go to the first backend that accepts them
type chainKeyring struct {
	primary  Keyring
	fallback Keyring
}

func (k *chainKeyring) GetKey(account string) (string, error) {
	key, err := k.primary.GetKey(account)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}
	return k.fallback.GetKey(account)
}

func (k *chainKeyring) SetKey(account, password string) error {
	err := k.primary.SetKey(account, password)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrReadOnly) {
		return err
	}
	if fallbackErr := k.fallback.SetKey(account, password); fallbackErr != nil {
		return fmt.Errorf("no writable keyring (set %s instead): %w", EnvKey, fallbackErr)
	}
	return nil
}
