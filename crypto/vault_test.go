package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// low scrypt cost keeps the tests fast
const testN = 1024

func TestVault_RoundTrip(t *testing.T) {
	v, err := newVault("api-token", "correct horse", testN)
	require.NoError(t, err)

	token, err := v.Decrypt("correct horse")
	require.NoError(t, err)
	assert.Equal(t, "api-token", token)
	assert.True(t, v.ValidatePassphrase("correct horse"))
}

func TestVault_WrongPassphrase(t *testing.T) {
	v, err := newVault("api-token", "correct horse", testN)
	require.NoError(t, err)

	_, err = v.Decrypt("battery staple")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
	assert.False(t, v.ValidatePassphrase("battery staple"))
}

func TestVault_SurvivesJSON(t *testing.T) {
	v, err := newVault("api-token", "pw", testN)
	require.NoError(t, err)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "api-token")

	var loaded Vault
	require.NoError(t, json.Unmarshal(raw, &loaded))

	token, err := loaded.Decrypt("pw")
	require.NoError(t, err)
	assert.Equal(t, "api-token", token)
}

func TestVault_TamperedData(t *testing.T) {
	v, err := newVault("api-token", "pw", testN)
	require.NoError(t, err)

	v.Data[0] ^= 0xff
	_, err = v.Decrypt("pw")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
}

func TestVault_SaltIsRandom(t *testing.T) {
	a, err := newVault("api-token", "pw", testN)
	require.NoError(t, err)
	b, err := newVault("api-token", "pw", testN)
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestNewVault_EmptyToken(t *testing.T) {
	_, err := newVault("", "pw", testN)
	assert.Error(t, err)
}
