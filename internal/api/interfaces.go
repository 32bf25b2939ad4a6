package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type JWTServiceI interface {
	GenerateTokens(user *entity.User) (*TokenPair, error)
	GenerateAccessToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
}

type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}
