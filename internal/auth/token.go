package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aikya-dev/aikya/internal/db/models"
)

// TokenClaims are the JWT claims carried by an API bearer token.
type TokenClaims struct {
	UserID  uint64 `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed bearer token for the user. Clients treat the
// token as opaque; only the server ever parses it.
func (s *Service) IssueToken(user *models.User) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", fmt.Errorf("jwt secret not configured")
	}

	claims := TokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	if len(s.jwtSecret) == 0 {
		return nil, fmt.Errorf("jwt secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
