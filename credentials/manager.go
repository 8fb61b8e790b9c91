package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chinmay1088/ddollars/crypto"
)

const (
	// Session duration in minutes
	SessionDuration = 30

	vaultFile   = "token.vault"
	sessionFile = "session.json"
)

var (
	ErrNoVault = errors.New("no stored token. Run 'ddollars login' first")
	ErrLocked  = errors.New("token is locked. Run 'ddollars unlock' first")
)

// SessionData holds the unlocked token until it expires
type SessionData struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// Manager stores the API token in an encrypted vault and keeps
// a short-lived session so commands do not prompt every time
type Manager struct {
	vaultPath   string
	sessionPath string
	vault       *crypto.Vault
	token       string
	mu          sync.RWMutex
	unlocked    bool
	now         func() time.Time
}

// DefaultDir returns ~/.ddollars
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ddollars"), nil
}

// NewManager creates a credential manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{
		vaultPath:   filepath.Join(dir, vaultFile),
		sessionPath: filepath.Join(dir, sessionFile),
		now:         time.Now,
	}
}

// Save seals token with passphrase, replacing any stored token, and opens a session
func (m *Manager) Save(token, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := crypto.NewVault(token, passphrase)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.vaultPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := m.saveVault(vault); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	m.vault = vault
	m.token = token
	m.unlocked = true

	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Unlock decrypts the stored token and opens a session
func (m *Manager) Unlock(passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadSession() {
		return nil
	}

	if m.vault == nil {
		vault, err := m.loadVault()
		if err != nil {
			return err
		}
		m.vault = vault
	}

	token, err := m.vault.Decrypt(passphrase)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPassphrase) {
			return fmt.Errorf("invalid passphrase")
		}
		return fmt.Errorf("failed to decrypt vault: %w", err)
	}

	m.token = token
	m.unlocked = true

	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Lock clears the token from memory and ends the session
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unlocked = false
	m.token = ""
	m.clearSession()
}

// Forget removes the stored vault and any session
func (m *Manager) Forget() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unlocked = false
	m.token = ""
	m.vault = nil
	m.clearSession()

	if err := os.Remove(m.vaultPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove vault: %w", err)
	}
	return nil
}

// IsUnlocked reports whether a token is available without a passphrase
func (m *Manager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unlocked && m.token != "" {
		return true
	}
	return m.loadSession()
}

// Token returns the unlocked token
func (m *Manager) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unlocked && m.token != "" {
		return m.token, nil
	}
	if m.loadSession() {
		return m.token, nil
	}
	if !m.vaultExists() {
		return "", ErrNoVault
	}
	return "", ErrLocked
}

// SessionExpiry returns when the current session ends
func (m *Manager) SessionExpiry() (time.Time, bool) {
	data, err := os.ReadFile(m.sessionPath)
	if err != nil {
		return time.Time{}, false
	}
	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return time.Time{}, false
	}
	return session.Expiration, m.now().Before(session.Expiration)
}

// VaultExists checks if a vault file exists
func (m *Manager) VaultExists() bool {
	return m.vaultExists()
}

func (m *Manager) vaultExists() bool {
	_, err := os.Stat(m.vaultPath)
	return err == nil
}

// createSession writes the session file for the current token
func (m *Manager) createSession() error {
	data, err := json.Marshal(SessionData{
		Token:      m.token,
		Expiration: m.now().Add(SessionDuration * time.Minute),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(m.sessionPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// loadSession loads the session if it exists and has not expired
func (m *Manager) loadSession() bool {
	data, err := os.ReadFile(m.sessionPath)
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		// Session file is corrupted, delete it
		os.Remove(m.sessionPath)
		return false
	}

	if m.now().After(session.Expiration) || session.Token == "" {
		os.Remove(m.sessionPath)
		return false
	}

	m.token = session.Token
	m.unlocked = true
	return true
}

func (m *Manager) clearSession() {
	os.Remove(m.sessionPath)
}

func (m *Manager) saveVault(vault *crypto.Vault) error {
	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	if err := os.WriteFile(m.vaultPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}
	return nil
}

func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoVault
		}
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}
	return &vault, nil
}
