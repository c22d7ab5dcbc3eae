package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// RoleMiddleware restringe o acesso aos papéis informados.
// Lista vazia aceita qualquer usuário autenticado.
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			user, ok := UserFromContext(r.Context())
			if !ok {
				logger.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if len(allowedRoles) > 0 && !slices.Contains(allowedRoles, user.Role) {
				logger.WithFields(log.Fields{
					"user_name": user.Username,
					"user_role": user.Role,
				}).Warn("Acesso negado por papel")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin})
}

// AllRoles exige apenas um usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(nil)
}
