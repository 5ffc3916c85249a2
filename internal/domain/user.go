package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações carregadas no token de acesso à API administrativa
type Claims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
