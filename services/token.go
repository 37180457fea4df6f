package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"food-delivery-api/config"
	"food-delivery-api/models"
)

// Claims carried by every session token.
type Claims struct {
	UserID   uint            `json:"user_id"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and parses signed session tokens. The signing secret
// comes from configuration at construction time; an empty secret is rejected
// up front so the process can never issue unsigned tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
}

func NewTokenIssuer(cfg config.JWTConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT secret is not configured")
	}
	days := cfg.ExpireDays
	if days <= 0 {
		days = 7
	}
	return &TokenIssuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		lifetime: time.Duration(days) * 24 * time.Hour,
	}, nil
}

// Issue creates a signed HS256 token for the user.
func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates the signature, signing method, issuer, audience and expiry
// of a token string and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithAudience(t.audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
