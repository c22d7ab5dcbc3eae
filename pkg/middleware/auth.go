package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas que não exigem token
var publicPaths = map[string]bool{
	"/":        true,
	"/login":   true,
	"/health":  true,
	"/metrics": true,
}

const staticPrefix = "/static/"

func isPublic(r *http.Request) bool {
	return r.Method == http.MethodOptions ||
		publicPaths[r.URL.Path] ||
		strings.HasPrefix(r.URL.Path, staticPrefix)
}

// bearerToken extrai o token do header Authorization. O esquema não diferencia maiúsculas.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			logger := log.ForContext(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			user, err := authService.Authenticate(r.Context(), tokenString)
			if err != nil {
				logger.WithError(err).Warn("auth: token rejeitado")

				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authenticating.IsTokenError(err) {
					apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext devolve o usuário autenticado pela AuthMiddleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	return user, ok && user != nil
}
