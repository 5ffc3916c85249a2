package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feed-report-bot/internal/domain"
	"github.com/vfg2006/feed-report-bot/pkg/apiErrors"
)

// Roles aceitos no claim "role" do token
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// RoleMiddleware restringe o acesso aos roles informados
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.Role) {
				logrus.Warningf("Acesso negado para usuário %s, Role=%s", userClaims.UserName, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{RoleAdmin})
}

// AnyRole permite administradores e usuários de leitura
func AnyRole() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{RoleAdmin, RoleViewer})
}
