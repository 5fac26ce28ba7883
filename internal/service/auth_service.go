package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"loanlens/internal/config"
	"loanlens/internal/domain"
)

// Claims represents the JWT claims issued by the platform identity
// service. This service validates tokens, it never mints them.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID       `json:"uid"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
}

// AuthService validates bearer tokens for the API middleware.
type AuthService interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg *config.JWTConfig
}

// NewAuthService creates a token-validating AuthService.
func NewAuthService(cfg *config.JWTConfig) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	if s.cfg.Issuer != "" {
		issuer, _ := claims.GetIssuer()
		if issuer != s.cfg.Issuer {
			return nil, domain.ErrTokenInvalid
		}
	}

	switch claims.Role {
	case domain.RoleAdmin, domain.RoleUnderwriter, domain.RoleProcessor:
	default:
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
