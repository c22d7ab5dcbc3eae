package authenticating

import (
	"context"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_user_store.go -package=mocks

// UserStore lista as credenciais conhecidas, na ordem da fonte
type UserStore interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type Authenticator interface {
	// Login confere as credenciais e emite o token de acesso
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)

	// Authenticate valida o token e devolve o usuário dono dele
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
