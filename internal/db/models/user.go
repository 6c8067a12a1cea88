package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents a registered account. Accounts sign up through the public
// API with the admin flag off; the flag is only ever granted in the database
// (or by the first-run seed), never by anything client-side.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account may sign in.
	Active bool
	// FullName is the display name shown in the console and API responses.
	FullName string `gorm:"size:100;not null"`
	// Email is the unique login identifier.
	Email string `gorm:"unique;size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// IsAdmin grants access to the content management surfaces.
	IsAdmin bool `gorm:"default:false"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp (nil if not deleted, managed by GORM).
	DeletedAt *time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
