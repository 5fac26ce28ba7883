package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"loanlens/internal/config"
	"loanlens/internal/domain"
	"loanlens/internal/service"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret-key", Issuer: "loanlens-identity"}
}

func signToken(t *testing.T, cfg config.JWTConfig, mutate func(*service.Claims)) string {
	t.Helper()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: uuid.New(),
		Email:  "underwriter@example.com",
		Role:   domain.RoleUnderwriter,
	}
	if mutate != nil {
		mutate(claims)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthService_ValidateToken_Success(t *testing.T) {
	cfg := testJWTConfig()
	svc := service.NewAuthService(&cfg)

	claims, err := svc.ValidateToken(signToken(t, cfg, nil))

	assert.NoError(t, err)
	assert.Equal(t, "underwriter@example.com", claims.Email)
	assert.Equal(t, domain.RoleUnderwriter, claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.UserID)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	svc := service.NewAuthService(&cfg)

	token := signToken(t, cfg, func(c *service.Claims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestAuthService_ValidateToken_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	svc := service.NewAuthService(&cfg)

	token := signToken(t, cfg, func(c *service.Claims) {
		c.Issuer = "somebody-else"
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthService_ValidateToken_UnknownRole(t *testing.T) {
	cfg := testJWTConfig()
	svc := service.NewAuthService(&cfg)

	token := signToken(t, cfg, func(c *service.Claims) {
		c.Role = "superuser"
	})

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	other := config.JWTConfig{Secret: "different-secret", Issuer: cfg.Issuer}
	svc := service.NewAuthService(&cfg)

	_, err := svc.ValidateToken(signToken(t, other, nil))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
