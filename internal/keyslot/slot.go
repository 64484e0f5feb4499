// Package keyslot persists the credential marker: the (username, password)
// pair of the last successful login. It is a single global slot, not keyed
// per account, and it survives process restarts.
//
// The marker is sealed at rest with AES-GCM under a key derived from a
// per-install random device secret, standing in for the platform keychain.
// The slot records that a login has happened; it is not a capability grant,
// and nothing here re-checks the pair against the account registry.
package keyslot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/totallysecure/mathnotes/internal/common"
	"github.com/totallysecure/mathnotes/internal/cryptox"
)

const (
	secretFile = "device.secret"
	markerFile = "credential.bin"
)

// Slot is a file-backed credential marker rooted at a directory.
type Slot struct {
	dir string
}

func New(dir string) *Slot {
	return &Slot{dir: dir}
}

type sealedMarker struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

type credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// deviceSecret returns the per-install random secret, creating it on first use.
func (s *Slot) deviceSecret() ([]byte, error) {
	path := filepath.Join(s.dir, secretFile)

	secret, err := os.ReadFile(path)
	if err == nil {
		return secret, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("device secret read error: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("slot dir error: %w", err)
	}
	secret = common.GenerateRandByteArray(32)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("device secret write error: %w", err)
	}
	return secret, nil
}

// Save seals the pair and replaces whatever the slot held before.
func (s *Slot) Save(ctx context.Context, username, password string) error {
	secret, err := s.deviceSecret()
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(credential{Username: username, Password: password})
	if err != nil {
		return err
	}

	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveKey(secret, salt)
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := cryptox.Seal(plaintext, key)
	common.WipeByteArray(plaintext)
	if err != nil {
		return fmt.Errorf("marker seal error: %w", err)
	}

	blob, err := json.Marshal(sealedMarker{Salt: salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, markerFile), blob, 0o600); err != nil {
		return fmt.Errorf("marker write error: %w", err)
	}
	return nil
}

// Has reports whether the slot currently holds a marker. Read failures count
// as "no marker"; callers fall back to the login prompt.
func (s *Slot) Has(ctx context.Context) bool {
	_, err := os.Stat(filepath.Join(s.dir, markerFile))
	return err == nil
}

// Stored unseals and returns the pair held by the slot.
// Returns common.ErrorNotFound when the slot is empty.
func (s *Slot) Stored(ctx context.Context) (username, password string, err error) {
	blob, err := os.ReadFile(filepath.Join(s.dir, markerFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", common.ErrorNotFound
		}
		return "", "", fmt.Errorf("marker read error: %w", err)
	}

	var sealed sealedMarker
	if err := json.Unmarshal(blob, &sealed); err != nil {
		return "", "", fmt.Errorf("marker parse error: %w", err)
	}

	secret, err := s.deviceSecret()
	if err != nil {
		return "", "", err
	}

	key := cryptox.DeriveKey(secret, sealed.Salt)
	defer common.WipeByteArray(key)

	plaintext, err := cryptox.Open(sealed.Ciphertext, sealed.Nonce, key)
	if err != nil {
		return "", "", fmt.Errorf("marker open error: %w", err)
	}
	defer common.WipeByteArray(plaintext)

	var c credential
	if err := json.Unmarshal(plaintext, &c); err != nil {
		return "", "", fmt.Errorf("marker parse error: %w", err)
	}
	return c.Username, c.Password, nil
}

// Clear removes the marker. Logout does not call this; the marker outlives
// the in-memory session on purpose.
func (s *Slot) Clear(ctx context.Context) error {
	err := os.Remove(filepath.Join(s.dir, markerFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("marker remove error: %w", err)
	}
	return nil
}
