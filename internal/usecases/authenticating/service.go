package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/domain"
)

// Authenticator emite e valida os tokens da API administrativa
type Authenticator interface {
	GenerateToken(userName, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret string
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: cfg.Auth.Secret,
		now:    time.Now,
	}
}

func (s *Service) GenerateToken(userName, role string, ttl time.Duration) (string, error) {
	if s.secret == "" {
		return "", ErrMissingSecret
	}
	if userName == "" || role == "" {
		return "", ErrMissingRequiredData
	}

	now := s.now()
	claims := domain.Claims{
		UserID:   uuid.NewString(),
		UserName: userName,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
