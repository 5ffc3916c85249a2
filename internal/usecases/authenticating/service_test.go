package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feed-report-bot/internal/config"
	"github.com/vfg2006/feed-report-bot/internal/domain"
)

func newService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newService("jwt-secret")

	token, err := service.GenerateToken("ops", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.UserName)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.UserID)
}

func TestService_ValidateToken(t *testing.T) {
	service := newService("jwt-secret")

	expired, err := service.GenerateToken("ops", "admin", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := newService("outro-segredo").GenerateToken("ops", "admin", time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "Token expirado", token: expired, wantErr: ErrExpiredToken},
		{name: "Assinado com outro segredo", token: otherSecret, wantErr: ErrInvalidToken},
		{name: "Sem assinatura", token: noneToken, wantErr: ErrInvalidToken},
		{name: "Texto qualquer", token: "nao-e-um-jwt", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAuthorizationError(err))
			assert.Nil(t, claims)
		})
	}
}

func TestService_MissingSecret(t *testing.T) {
	service := newService("")

	_, err := service.GenerateToken("ops", "admin", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = service.ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestService_GenerateTokenRequiresData(t *testing.T) {
	_, err := newService("jwt-secret").GenerateToken("", "admin", time.Hour)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
