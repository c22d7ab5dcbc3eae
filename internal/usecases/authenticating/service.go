package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const TokenType = "bearer"

var _ Authenticator = (*Service)(nil)

type Service struct {
	users UserStore
	cfg   *config.Config
	now   func() time.Time
}

func NewService(users UserStore, cfg *config.Config) *Service {
	return &Service{
		users: users,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	logger := log.ForContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		logger.WithError(err).Error("authenticating: erro ao ler usuários")
		metrics.LoginAttempt(false)
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Usuário ou senha incorretos")
	}

	user := s.matchCredentials(users, username, password)
	if user == nil {
		logger.WithField("user_name", username).Warn("authenticating: credenciais inválidas")
		metrics.LoginAttempt(false)
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	metrics.LoginAttempt(true)
	logger.WithField("user_name", user.Username).Info("authenticating: login realizado")

	return &domain.LoginResponse{
		AccessToken: token,
		TokenType:   TokenType,
		User:        user.Info(),
	}, nil
}

// matchCredentials devolve a primeira linha com usuário e senha iguais
func (s *Service) matchCredentials(users []*domain.User, username, password string) *domain.User {
	for _, user := range users {
		if user.Username != username {
			continue
		}

		if s.cfg.Auth.BcryptPasswords {
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
				return user
			}
			continue
		}

		if user.Password == password {
			return user
		}
	}

	return nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()

	tokenID, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "authenticating: erro ao gerar jti")
	}

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.validateToken(tokenString)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("authenticating: erro ao ler usuários")
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário do token não encontrado")
	}

	for _, user := range users {
		if user.Username == claims.Subject {
			return user, nil
		}
	}

	return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, claims.Subject, "Usuário do token não encontrado")
}

func (s *Service) validateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token não informado")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem usuário")
	}

	return claims, nil
}
