package authservice

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
	"cadastroprojetos/internal/pkg/token"
)

// UserRepository define o contrato de persistência que este Serviço espera.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByLogin(ctx context.Context, login string) (domain.User, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(login string, role string) (string, error)
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Service implementa o registro e a autenticação de usuários.
type Service struct {
	repo     UserRepository
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do Serviço de Autenticação.
func NewService(repo UserRepository, tokenSvc TokenService, log logger.Logger) *Service {
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: log}
}

// Register registra um novo usuário com a senha hasheada via bcrypt.
func (s *Service) Register(ctx context.Context, data domain.RegisterRequest) (domain.User, error) {
	if data.Login == "" || data.Senha == "" {
		return domain.User{}, apperror.NewValidationError("Login e senha são obrigatórios")
	}
	if data.Role != domain.RoleAdministrador && data.Role != domain.RoleMembro {
		return domain.User{}, apperror.NewValidationError("Role de usuário inválida")
	}

	// Login deve ser único.
	_, err := s.repo.FindByLogin(ctx, data.Login)
	if err == nil {
		return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O login '%s' já está em uso", data.Login))
	}
	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Senha), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	novoUser := domain.User{
		Login: data.Login,
		Senha: string(hash),
		Role:  data.Role,
	}

	user, err := s.repo.Save(ctx, novoUser)
	if err != nil {
		s.logger.Error("Falha ao registrar usuário.", err)
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"login": user.Login, "role": user.Role})
	return user, nil
}

// Login autentica as credenciais e emite um JWT com o login como subject.
func (s *Service) Login(ctx context.Context, login string, senha string) (string, error) {
	if login == "" || senha == "" {
		return "", apperror.NewUnauthorizedError("Login e senha são obrigatórios")
	}

	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		// Não revelar se o login existe: qualquer falha de busca vira 401.
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			return "", apperror.NewUnauthorizedError("Login ou senha inválidos")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)) != nil {
		return "", apperror.NewUnauthorizedError("Login ou senha inválidos")
	}

	tokenString, err := s.tokenSvc.GenerateToken(user.Login, string(user.Role))
	if err != nil {
		return "", apperror.NewInternalError("Falha ao emitir token de acesso.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"login": user.Login})
	return tokenString, nil
}
