package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length

	vaultVersion = 1
)

// ErrInvalidPassphrase is returned when a vault cannot be opened with the given passphrase
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// Vault is an API token sealed with a passphrase-derived AES-GCM key
type Vault struct {
	Salt      []byte    `json:"salt"`
	Nonce     []byte    `json:"nonce"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`

	// scrypt cost, stored so vaults stay readable if the defaults change
	N int `json:"n"`
}

type VaultData struct {
	Token   string `json:"token"`
	Version int    `json:"version"`
}

// NewVault seals token with a key derived from passphrase
func NewVault(token, passphrase string) (*Vault, error) {
	return newVault(token, passphrase, ScryptN)
}

func newVault(token, passphrase string, n int) (*Vault, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(passphrase, salt, n)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(VaultData{
		Token:   token,
		Version: vaultVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed, err := seal(key, nonce, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return &Vault{
		Salt:      salt,
		Nonce:     nonce,
		Data:      sealed,
		CreatedAt: time.Now().UTC(),
		N:         n,
	}, nil
}

// Decrypt opens the vault and returns the stored token
func (v *Vault) Decrypt(passphrase string) (string, error) {
	n := v.N
	if n == 0 {
		n = ScryptN
	}

	key, err := deriveKey(passphrase, v.Salt, n)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	plaintext, err := open(key, v.Nonce, v.Data)
	if err != nil {
		return "", err
	}
	defer clearBytes(plaintext)

	var vaultData VaultData
	if err := json.Unmarshal(plaintext, &vaultData); err != nil {
		return "", fmt.Errorf("failed to deserialize vault data: %w", err)
	}
	if vaultData.Version != vaultVersion {
		return "", fmt.Errorf("unsupported vault version %d", vaultData.Version)
	}

	return vaultData.Token, nil
}

func (v *Vault) ValidatePassphrase(passphrase string) bool {
	_, err := v.Decrypt(passphrase)
	return err == nil
}

func deriveKey(passphrase string, salt []byte, n int) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, n, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func seal(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesGCM.Seal(nil, nonce, data, nil), nil
}

func open(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesGCM.NonceSize() {
		return nil, fmt.Errorf("vault nonce is corrupt")
	}

	plaintext, err := aesGCM.Open(nil, nonce, data, nil)
	if err != nil {
		// GCM cannot tell a wrong key from tampered data
		return nil, ErrInvalidPassphrase
	}
	return plaintext, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
