package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKeyring struct {
	keys map[string]string
	err  error
}

func (m *memKeyring) GetKey(account string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	k, ok := m.keys[account]
	if !ok {
		return "", ErrKeyNotFound
	}
	return k, nil
}

func (m *memKeyring) SetKey(account, password string) error {
	if m.err != nil {
		return m.err
	}
	m.keys[account] = password
	return nil
}

func TestChainPrefersEnvironment(t *testing.T) {
	t.Setenv(EnvKey, "from-env")
	sys := &memKeyring{keys: map[string]string{"db:a": "from-keyring"}}
	k := &chainKeyring{primary: envKeyring{}, fallback: sys}

	got, err := k.GetKey("db:a")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestChainFallsBackAndWritesToSystem(t *testing.T) {
	t.Setenv(EnvKey, "")
	sys := &memKeyring{keys: map[string]string{}}
	k := &chainKeyring{primary: envKeyring{}, fallback: sys}

	_, err := k.GetKey("db:a")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, k.SetKey("db:a", "secret"))
	got, err := k.GetKey("db:a")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, "secret", sys.keys["db:a"])
}

func TestChainReportsUnwritableKeyring(t *testing.T) {
	t.Setenv(EnvKey, "")
	k := &chainKeyring{primary: envKeyring{}, fallback: &memKeyring{err: errors.New("no dbus")}}

	err := k.SetKey("db:a", "secret")
	require.Error(t, err)
	assert.ErrorContains(t, err, EnvKey)
	assert.NotContains(t, err.Error(), "secret")
}

func TestAccountForIsStable(t *testing.T) {
	assert.Equal(t, AccountFor("data/../forest.db"), AccountFor("forest.db"))
	assert.NotEqual(t, AccountFor("a.db"), AccountFor("b.db"))
}
