package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/db/models"
	"github.com/aikya-dev/aikya/internal/session"
)

// Service provides authentication and authorization against the local database.
type Service struct {
	db        *gorm.DB
	jwtSecret []byte
}

// NewService creates a new auth service. The secret signs API bearer tokens.
func NewService(db *gorm.DB, jwtSecret string) *Service {
	return &Service{db: db, jwtSecret: []byte(jwtSecret)}
}

// Authenticate verifies email and password against the local database.
// Unknown emails and wrong passwords both come back as ErrInvalidCredentials
// so the login form cannot be used to probe which addresses exist.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	user.UpdatedAt = time.Now()
	s.db.Save(&user)

	return &user, nil
}

// Signup registers a new account. The admin flag is never part of the signup
// payload, new accounts always start without privileges.
func (s *Service) Signup(fullName, email, password string) (*models.User, error) {
	var existing models.User

	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := models.User{
		Active:   true,
		FullName: fullName,
		Email:    email,
		Password: models.HashPassword(password),
		IsAdmin:  false,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *Service) GetUserByID(userID uint64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// ListUsers lists all users with pagination.
func (s *Service) ListUsers(limit, offset int) ([]models.User, int64, error) {
	var (
		users []models.User
		total int64
	)

	query := s.db.Model(&models.User{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if err := query.Order("id").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// SetAdmin grants or revokes the admin flag of an account. This is the only
// place the flag changes, clients only ever receive it.
func (s *Service) SetAdmin(userID uint64, isAdmin bool) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_admin", isAdmin).Error
}

// Profile projects a database user onto the wire profile handed to clients.
func Profile(user *models.User) session.UserProfile {
	return session.UserProfile{
		ID:       strconv.FormatUint(user.ID, 10),
		FullName: user.FullName,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}
