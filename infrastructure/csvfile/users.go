package csvfile

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// UserStore lê users.csv (username,password,role) a cada chamada, sem cache
type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// ListUsers retorna os usuários na ordem do arquivo
func (s *UserStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	err := readRecords(ctx, s.path, func(r record) error {
		username := strings.TrimSpace(r.get("username"))
		if username == "" {
			return nil
		}

		users = append(users, &domain.User{
			Username: username,
			Password: r.get("password"),
			Role:     domain.Role(strings.TrimSpace(r.get("role"))),
		})
		return nil
	}, nil)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(domain.ErrUsersNotFound, err.Error())
		}
		return nil, err
	}

	return users, nil
}
