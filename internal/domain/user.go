package domain

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// IsAdmin indica se o papel tem acesso aos campos restritos (cost_micros)
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// UserInfo é a representação pública do usuário
type UserInfo struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u *User) Info() UserInfo {
	return UserInfo{
		Username: u.Username,
		Role:     u.Role,
	}
}

// Claims são gravadas no token de acesso. O subject carrega o username.
type Claims struct {
	jwt.RegisteredClaims
}

// ErrUsersNotFound indica que o arquivo de credenciais não existe
var ErrUsersNotFound = errors.New("arquivo de usuários não encontrado")

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse segue o formato OAuth2 de bearer token
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}
