package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/fittrack/internal/api"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

var (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 24 * time.Hour
)

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// New creates HS256 token service. Non-positive TTLs fall back to defaults.
func New(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *JWTService) GenerateTokens(user *entity.User) (*api.TokenPair, error) {
	access, err := s.generate(user, api.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(user, api.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &api.TokenPair{
		Access:  access,
		Refresh: refresh,
	}, nil
}

func (s *JWTService) GenerateAccessToken(user *entity.User) (string, error) {
	return s.generate(user, api.TokenTypeAccess, s.accessTTL)
}

func (s *JWTService) generate(user *entity.User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &api.JWTClaims{
		UserID:    user.ID.String(),
		Username:  user.Name,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token error: %w", tokenType, err)
	}
	return signed, nil
}

// ParseToken checks signature and time claims. Every rejection wraps ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
