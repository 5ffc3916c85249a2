package authenticating

import (
	"errors"
)

// Tipos de erros de autenticação personalizados
var (
	ErrMissingSecret         = errors.New("segredo de autenticação não configurado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingSecret)
}
