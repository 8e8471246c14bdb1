package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
)

// InterfaceJWTService JWT service interface
type InterfaceJWTService interface {
	GenerateToken(user models.User) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims is the token payload: the user's id, username and role
type JWTClaims struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 tokens
type JWTService struct {
	secretKey string
	issuer    string
	expiry    time.Duration
	now       func() time.Time
}

// NewJWTService creates a JWT service from the configured secret and expiry
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	hours := cfg.JWTExpiryHours
	if hours <= 0 {
		hours = 12
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "my-store-crm",
		expiry:    time.Duration(hours) * time.Hour,
		now:       time.Now,
	}
}

// 1 GenerateToken signs a token for the user
func (s *JWTService) GenerateToken(user models.User) (string, error) {
	now := s.now()
	claims := &JWTClaims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2 ValidateToken verifies signature and expiry and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, &apperror.Error{Kind: apperror.KindAuth, Message: "Invalid or expired token", Err: err}
	}
	if _, ok := models.ParseRole(string(claims.Role)); !ok {
		return nil, apperror.Auth("Invalid or expired token")
	}
	return claims, nil
}
