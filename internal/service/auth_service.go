package service

import (
	"context"
	"fmt"

	"team-portal-service/internal/jwt"
	"team-portal-service/internal/my_errors"
)

// AuthService verifies tokens minted by the portal's identity provider. The
// provider owns sessions and roles; this service only checks the signature
// and extracts the student id.
type AuthService struct {
	secret string
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: secret}
}

func (s *AuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := jwt.ParseToken(token, s.secret)
	if err != nil {
		return "", my_errors.ErrInvalidToken
	}
	if claims.StudentID == "" {
		return "", fmt.Errorf("student_id claim missing: %w", my_errors.ErrInvalidToken)
	}
	return claims.StudentID, nil
}
