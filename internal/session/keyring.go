package session

import (
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name used in the OS credential manager.
const KeyringService = "aikya"

// KeyringStorage stores session keys in the OS keychain/credential manager.
// It implements the same storage interface as the file and memory backends,
// so a store can be pointed at the keychain without any caller changes.
type KeyringStorage struct {
	service string
}

// NewKeyringStorage creates a keychain-backed storage. An empty service name
// falls back to KeyringService.
func NewKeyringStorage(service string) *KeyringStorage {
	if service == "" {
		service = KeyringService
	}

	return &KeyringStorage{service: service}
}

// Get returns the value for key, or nil when the key is not present.
func (k *KeyringStorage) Get(key string) ([]byte, error) {
	val, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return []byte(val), nil
}

// Set writes the value for key. The expiry is ignored, keychain entries do
// not expire.
func (k *KeyringStorage) Set(key string, val []byte, _ time.Duration) error {
	return keyring.Set(k.service, key, string(val))
}

// Delete removes the key. Deleting an absent key is a no-op.
func (k *KeyringStorage) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}

	return nil
}

// Reset removes all session keys.
func (k *KeyringStorage) Reset() error {
	for _, key := range []string{KeyToken, KeyProfile} {
		if err := k.Delete(key); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op, the keychain holds no open handles.
func (k *KeyringStorage) Close() error {
	return nil
}
