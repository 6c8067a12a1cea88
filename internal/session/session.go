package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/storage"
)

const (
	// KeyToken is the storage key holding the bearer token.
	KeyToken = "token"

	// KeyProfile is the storage key holding the serialized user profile.
	KeyProfile = "profile"
)

// ErrStorageUnavailable is returned when the persistence medium cannot be
// written. Authentication still proceeds in memory for the current process.
var ErrStorageUnavailable = errors.New("session storage unavailable")

// UserProfile is the minimal profile of a signed-in user as returned by the
// authentication API. IsAdmin is only ever copied verbatim from that response
// and defaults to false when absent.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Session is the durable (token, profile) pair representing a signed-in user.
type Session struct {
	Token   string
	Profile *UserProfile
}

// Authenticated reports whether the session holds both a non-empty token and
// a profile. Anything less counts as signed out.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Profile != nil
}

// Store persists a session in a key-value storage backend.
type Store struct {
	storage storage.Storage
}

// New creates a session store on top of the given storage backend.
func New(st storage.Storage) *Store {
	if st == nil {
		panic("session: storage is nil")
	}

	return &Store{storage: st}
}

// Save writes the profile and token durably. Both keys are written; on a
// storage failure the error wraps ErrStorageUnavailable so callers can
// degrade to an in-memory login instead of failing the sign-in.
func (s *Store) Save(profile UserProfile, token string) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := s.storage.Set(KeyProfile, raw, 0); err != nil {
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	if err := s.storage.Set(KeyToken, []byte(token), 0); err != nil {
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	return nil
}

// Load returns the persisted session. Missing, partial or malformed data is
// normalized to an empty session and never surfaced as an error; a partial
// pair is also cleared from storage so it cannot be half-trusted later.
func (s *Store) Load() Session {
	token := s.readToken()
	profile := s.readProfile()

	if token == "" || profile == nil {
		if token != "" || profile != nil {
			// one half present, drop the other
			_ = s.Clear()
		}

		return Session{}
	}

	return Session{Token: token, Profile: profile}
}

// Clear removes both token and profile. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if err := s.storage.Delete(KeyToken); err != nil {
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	if err := s.storage.Delete(KeyProfile); err != nil {
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	return nil
}

// HasToken reports whether a non-empty token is stored, regardless of whether
// the profile parses.
func (s *Store) HasToken() bool {
	return s.readToken() != ""
}

func (s *Store) readToken() string {
	raw, err := s.storage.Get(KeyToken)
	if err != nil {
		return ""
	}

	return string(raw)
}

func (s *Store) readProfile() *UserProfile {
	raw, err := s.storage.Get(KeyProfile)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var profile UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// corrupt value, treat as absent; the next Save overwrites it
		return nil
	}

	return &profile
}
