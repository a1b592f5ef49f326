package membroservice

import (
	"context"
	"fmt"
	"strings"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// MembroRepository define o contrato que este Serviço espera da camada de
// Persistência do diretório de membros.
type MembroRepository interface {
	ConsultarID(ctx context.Context, id int64) (*domain.Membro, error)
	ListarTodos(ctx context.Context) ([]domain.Membro, error)
	Criar(ctx context.Context, membro domain.Membro) (domain.Membro, error)
}

// Service expõe o diretório de membros consumido pelo serviço de projetos e
// pela API de membros.
type Service struct {
	repo   MembroRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Membros.
func NewService(repo MembroRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Criar cadastra um novo membro no diretório.
func (s *Service) Criar(ctx context.Context, membro domain.Membro) (domain.Membro, error) {
	if strings.TrimSpace(membro.Nome) == "" {
		return domain.Membro{}, apperror.NewValidationError("O nome do membro é obrigatório")
	}
	if membro.Cargo != domain.CargoGerente && membro.Cargo != domain.CargoFuncionario {
		return domain.Membro{}, apperror.NewValidationError("Cargo do membro é inválido")
	}

	criado, err := s.repo.Criar(ctx, membro)
	if err != nil {
		s.logger.Error("Falha ao criar membro no repositório.", err)
		return domain.Membro{}, err
	}

	s.logger.Info("Membro criado com sucesso.", map[string]interface{}{"membro_id": criado.ID, "cargo": criado.Cargo})
	return criado, nil
}

// ConsultarMembro busca um membro pelo ID.
func (s *Service) ConsultarMembro(ctx context.Context, id int64) (domain.Membro, error) {
	membro, err := s.repo.ConsultarID(ctx, id)
	if err != nil {
		return domain.Membro{}, err
	}
	if membro == nil {
		return domain.Membro{}, apperror.NewNotFoundError(fmt.Sprintf("Membro do código %d não encontrado", id))
	}
	return *membro, nil
}

// ListarMembros retorna todos os membros do diretório.
func (s *Service) ListarMembros(ctx context.Context) ([]domain.Membro, error) {
	return s.repo.ListarTodos(ctx)
}
