package projetoservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
	"cadastroprojetos/internal/service/projetoservice"
)

// MockProjetoRepository é uma implementação mock da interface ProjetoRepository
type MockProjetoRepository struct {
	mock.Mock
}

func (m *MockProjetoRepository) Save(ctx context.Context, projeto domain.Projeto) (domain.Projeto, error) {
	args := m.Called(ctx, projeto)
	return args.Get(0).(domain.Projeto), args.Error(1)
}

func (m *MockProjetoRepository) FindByID(ctx context.Context, id int64) (domain.Projeto, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Projeto), args.Error(1)
}

func (m *MockProjetoRepository) FindAll(ctx context.Context) ([]domain.Projeto, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Projeto), args.Error(1)
}

func (m *MockProjetoRepository) Update(ctx context.Context, projeto domain.Projeto) error {
	args := m.Called(ctx, projeto)
	return args.Error(0)
}

func (m *MockProjetoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjetoRepository) ContarProjetosMembroAtivo(ctx context.Context, membroID int64, statusExcluidos []domain.Status) (int64, error) {
	args := m.Called(ctx, membroID, statusExcluidos)
	return args.Get(0).(int64), args.Error(1)
}

// MockDiretorioMembros é uma implementação mock da interface DiretorioMembros
type MockDiretorioMembros struct {
	mock.Mock
}

func (m *MockDiretorioMembros) ConsultarID(ctx context.Context, id int64) (*domain.Membro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membro), args.Error(1)
}

func novoServico() (*projetoservice.Service, *MockProjetoRepository, *MockDiretorioMembros) {
	mockRepo := new(MockProjetoRepository)
	mockDiretorio := new(MockDiretorioMembros)
	mockLogger := logger.NewLogger("debug")
	return projetoservice.NewService(mockRepo, mockDiretorio, mockLogger), mockRepo, mockDiretorio
}

// gerenteValido registra no diretório um gerente com o ID informado.
func gerenteValido(mockDiretorio *MockDiretorioMembros, id int64) {
	mockDiretorio.On("ConsultarID", mock.Anything, id).Return(&domain.Membro{ID: id, Nome: "Kauã", Cargo: domain.CargoGerente}, nil)
}

// funcionarioValido registra no diretório um funcionário alocável com o ID informado.
func funcionarioValido(mockDiretorio *MockDiretorioMembros, mockRepo *MockProjetoRepository, id int64) {
	mockDiretorio.On("ConsultarID", mock.Anything, id).Return(&domain.Membro{ID: id, Nome: "Funcionário", Cargo: domain.CargoFuncionario}, nil)
	mockRepo.On("ContarProjetosMembroAtivo", mock.Anything, id, mock.Anything).Return(int64(0), nil)
}

// TestCriar_Success testa a criação de um projeto com equipe válida.
func TestCriar_Success(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	funcionarioValido(mockDiretorio, mockRepo, 2)
	funcionarioValido(mockDiretorio, mockRepo, 3)

	// 60 dias e orçamento dentro do limite: projeto nasce EM_ANALISE com risco BAIXO
	esperado := domain.Projeto{
		Nome:            "Migração ERP",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 2),
		Orcamento:       85000,
		Descricao:       "Substituição do ERP legado",
		GerenteID:       1,
		MembrosIDs:      []int64{2, 3},
		Status:          domain.StatusEmAnalise,
		Risco:           domain.RiscoBaixo,
	}
	mockRepo.On("Save", mock.Anything, esperado).Return(esperado, nil)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Migração ERP",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 2),
		Orcamento:       85000,
		Descricao:       "Substituição do ERP legado",
		GerenteID:       1,
		MembrosIDs:      []int64{2, 3},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockDiretorio.AssertExpectations(t)
}

// TestCriar_Fail_NomeVazio testa a rejeição de projeto sem nome.
func TestCriar_Fail_NomeVazio(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "   ",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{2},
	})

	assert.Error(t, err)
	var validationErr *apperror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_GerenteNaoEncontrado testa gerente ausente do diretório.
func TestCriar_Fail_GerenteNaoEncontrado(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	mockDiretorio.On("ConsultarID", mock.Anything, int64(99)).Return(nil, nil)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       99,
		MembrosIDs:      []int64{2},
	})

	assert.Error(t, err)
	var notFoundErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "Gerente não encontrado", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_GerenteComCargoFuncionario testa gerente com cargo errado.
func TestCriar_Fail_GerenteComCargoFuncionario(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	mockDiretorio.On("ConsultarID", mock.Anything, int64(2)).Return(&domain.Membro{ID: 2, Nome: "Pedro", Cargo: domain.CargoFuncionario}, nil)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       2,
		MembrosIDs:      []int64{3},
	})

	assert.Error(t, err)
	var businessErr *apperror.BusinessRuleError
	assert.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "Membro não pode ser um Gerente", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_GerenteComoMembro testa gerente listado na própria equipe.
func TestCriar_Fail_GerenteComoMembro(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{2, 1},
	})

	assert.Error(t, err)
	assert.Equal(t, "Gerente não pode ser um membro", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_SemMembros testa a rejeição de equipe vazia.
func TestCriar_Fail_SemMembros(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{},
	})

	assert.Error(t, err)
	assert.Equal(t, "Quantidade inválida de membros", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_MaisDeDezMembros testa a rejeição de equipe acima do limite.
func TestCriar_Fail_MaisDeDezMembros(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)

	membros := make([]int64, 0, 11)
	for i := int64(2); i <= 12; i++ {
		membros = append(membros, i)
	}

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      membros,
	})

	assert.Error(t, err)
	assert.Equal(t, "Quantidade inválida de membros", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_MembrosRepetidos testa a rejeição de IDs duplicados na equipe.
func TestCriar_Fail_MembrosRepetidos(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{2, 3, 2},
	})

	assert.Error(t, err)
	assert.Equal(t, "Há membros repetidos", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_MembroComCargoGerente testa membro com cargo diferente de funcionário.
func TestCriar_Fail_MembroComCargoGerente(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	mockDiretorio.On("ConsultarID", mock.Anything, int64(5)).Return(&domain.Membro{ID: 5, Nome: "Augusta", Cargo: domain.CargoGerente}, nil)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{5},
	})

	assert.Error(t, err)
	assert.Equal(t, "Membro com cargo diferente de funcionário", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_MembroJaAlocadoEmTresProjetos testa o limite de alocação simultânea.
func TestCriar_Fail_MembroJaAlocadoEmTresProjetos(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	mockDiretorio.On("ConsultarID", mock.Anything, int64(7)).Return(&domain.Membro{ID: 7, Nome: "Kadson", Cargo: domain.CargoFuncionario}, nil)
	mockRepo.On("ContarProjetosMembroAtivo", mock.Anything, int64(7), mock.Anything).Return(int64(3), nil)

	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto X",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 1),
		GerenteID:       1,
		MembrosIDs:      []int64{7},
	})

	assert.Error(t, err)
	assert.Equal(t, "Membro com o ID 7 já está em 3 ou mais projetos", err.Error())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestCriar_RiscoBaixo testa orçamento e prazo dentro dos limites de risco baixo.
func TestCriar_RiscoBaixo(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	funcionarioValido(mockDiretorio, mockRepo, 2)

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Risco == domain.RiscoBaixo
	})).Return(domain.Projeto{}, nil)

	// 60 dias, orçamento 500
	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto Baixo",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 3, 2),
		Orcamento:       500,
		GerenteID:       1,
		MembrosIDs:      []int64{2},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestCriar_RiscoMedio testa prazo curto com orçamento no teto da faixa média.
func TestCriar_RiscoMedio(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	funcionarioValido(mockDiretorio, mockRepo, 2)

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Risco == domain.RiscoMedio
	})).Return(domain.Projeto{}, nil)

	// 30 dias, orçamento 500000
	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto Médio",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 1, 31),
		Orcamento:       500000,
		GerenteID:       1,
		MembrosIDs:      []int64{2},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestCriar_RiscoAlto testa orçamento acima do teto da faixa média com prazo curto.
func TestCriar_RiscoAlto(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	gerenteValido(mockDiretorio, 1)
	funcionarioValido(mockDiretorio, mockRepo, 2)

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Risco == domain.RiscoAlto
	})).Return(domain.Projeto{}, nil)

	// 10 dias, orçamento 600000
	err := svc.Criar(context.Background(), domain.ProjetoRequest{
		Nome:            "Projeto Alto",
		DataInicio:      domain.NovaData(2026, 1, 1),
		PrevisaoTermino: domain.NovaData(2026, 1, 11),
		Orcamento:       600000,
		GerenteID:       1,
		MembrosIDs:      []int64{2},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestAvancarStatus_Success testa a transição do primeiro status da cadeia.
func TestAvancarStatus_Success(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEmAnalise}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Status == domain.StatusAnaliseRealizada
	})).Return(nil)

	err := svc.AvancarStatus(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestAvancarStatus_Encerrar testa que encerrar o projeto registra a data de término.
func TestAvancarStatus_Encerrar(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEmAndamento}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Status == domain.StatusEncerrado && p.DataTermino != nil && p.DataTermino.String() == domain.Hoje().String()
	})).Return(nil)

	err := svc.AvancarStatus(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestAvancarStatus_Fail_StatusTerminal testa a rejeição de avanço a partir de ENCERRADO.
func TestAvancarStatus_Fail_StatusTerminal(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEncerrado}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	err := svc.AvancarStatus(context.Background(), 1)

	assert.Error(t, err)
	var businessErr *apperror.BusinessRuleError
	assert.True(t, errors.As(err, &businessErr))
	assert.Equal(t, "Não é possível mudar o status de um projeto encerrado", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestAvancarStatus_Fail_Cancelado testa a rejeição de avanço a partir de CANCELADO.
func TestAvancarStatus_Fail_Cancelado(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusCancelado}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	err := svc.AvancarStatus(context.Background(), 1)

	assert.Error(t, err)
	assert.Equal(t, "Não é possível mudar o status de um projeto cancelado", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestCancelarProjeto_Success testa o cancelamento de um projeto ativo.
func TestCancelarProjeto_Success(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEmAndamento}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return p.Status == domain.StatusCancelado
	})).Return(nil)

	err := svc.CancelarProjeto(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestCancelarProjeto_Fail_JaEncerrado testa o cancelamento de projeto já encerrado.
func TestCancelarProjeto_Fail_JaEncerrado(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEncerrado}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	err := svc.CancelarProjeto(context.Background(), 1)

	assert.Error(t, err)
	var validationErr *apperror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Projeto já está com status de ENCERRADO", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestCancelarProjeto_Fail_JaCancelado testa o cancelamento repetido.
func TestCancelarProjeto_Fail_JaCancelado(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusCancelado}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	err := svc.CancelarProjeto(context.Background(), 1)

	assert.Error(t, err)
	assert.Equal(t, "Projeto já está com status de CANCELADO", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestDeletarProjeto_Success testa a exclusão de um projeto existente.
func TestDeletarProjeto_Success(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEmAndamento}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.DeletarProjeto(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestDeletarProjeto_Fail_NaoEncontrado testa a exclusão de projeto inexistente.
func TestDeletarProjeto_Fail_NaoEncontrado(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	mockRepo.On("FindByID", mock.Anything, int64(42)).Return(domain.Projeto{}, apperror.NewNotFoundError("Projeto com ID 42 não encontrado"))

	err := svc.DeletarProjeto(context.Background(), 42)

	assert.Error(t, err)
	var notFoundErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
	mockRepo.AssertNotCalled(t, "Delete")
}

// TestAdicionarMembros_Success testa a associação de novos membros ao fim da lista.
func TestAdicionarMembros_Success(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", Status: domain.StatusEmAndamento, MembrosIDs: []int64{2, 3}}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	funcionarioValido(mockDiretorio, mockRepo, 4)
	funcionarioValido(mockDiretorio, mockRepo, 5)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Projeto) bool {
		return assert.ObjectsAreEqual([]int64{2, 3, 4, 5}, p.MembrosIDs)
	})).Return(nil)

	resposta, err := svc.AdicionarMembros(context.Background(), 1, domain.AssociarMembrosRequest{MembrosIDs: []int64{4, 5}})

	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, resposta.MembrosIDs)
	mockRepo.AssertExpectations(t)
	mockDiretorio.AssertExpectations(t)
}

// TestAdicionarMembros_Fail_ListaVazia testa a rejeição de lista de novos membros vazia.
func TestAdicionarMembros_Fail_ListaVazia(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", MembrosIDs: []int64{2}}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	_, err := svc.AdicionarMembros(context.Background(), 1, domain.AssociarMembrosRequest{MembrosIDs: []int64{}})

	assert.Error(t, err)
	assert.Equal(t, "Lista de novos membros é obrigatória", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestAdicionarMembros_Fail_ExcedeLimite testa a rejeição quando o total passaria de dez.
func TestAdicionarMembros_Fail_ExcedeLimite(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", MembrosIDs: []int64{2, 3, 4, 5, 6, 7, 8, 9, 10}}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	_, err := svc.AdicionarMembros(context.Background(), 1, domain.AssociarMembrosRequest{MembrosIDs: []int64{11, 12}})

	assert.Error(t, err)
	assert.Equal(t, "Quantidade de membros excede 10", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestAdicionarMembros_Fail_MembroJaIncluso testa a rejeição de membro já presente no projeto.
func TestAdicionarMembros_Fail_MembroJaIncluso(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", MembrosIDs: []int64{2, 3}}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)

	_, err := svc.AdicionarMembros(context.Background(), 1, domain.AssociarMembrosRequest{MembrosIDs: []int64{3}})

	assert.Error(t, err)
	assert.Equal(t, "Membro com o ID 3 já está incluso no projeto", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestAdicionarMembros_Fail_MembroNaoEncontrado testa novo membro ausente do diretório.
func TestAdicionarMembros_Fail_MembroNaoEncontrado(t *testing.T) {
	svc, mockRepo, mockDiretorio := novoServico()

	projeto := domain.Projeto{ID: 1, Nome: "Projeto X", MembrosIDs: []int64{2}}
	mockRepo.On("FindByID", mock.Anything, int64(1)).Return(projeto, nil)
	mockDiretorio.On("ConsultarID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.AdicionarMembros(context.Background(), 1, domain.AssociarMembrosRequest{MembrosIDs: []int64{99}})

	assert.Error(t, err)
	assert.Equal(t, "Membro do código 99 não encontrado", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

// TestMostrarProjetos_Success testa a listagem de todos os projetos.
func TestMostrarProjetos_Success(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	projetos := []domain.Projeto{
		{ID: 1, Nome: "Projeto A", Status: domain.StatusEmAnalise, Risco: domain.RiscoBaixo, MembrosIDs: []int64{2}},
		{ID: 2, Nome: "Projeto B", Status: domain.StatusEmAndamento, Risco: domain.RiscoAlto, MembrosIDs: []int64{3}},
	}
	mockRepo.On("FindAll", mock.Anything).Return(projetos, nil)

	respostas, err := svc.MostrarProjetos(context.Background())

	assert.NoError(t, err)
	assert.Len(t, respostas, 2)
	assert.Equal(t, "Projeto A", respostas[0].Nome)
	assert.Equal(t, domain.StatusEmAndamento, respostas[1].Status)
	mockRepo.AssertExpectations(t)
}

// TestMostrarProjetos_Fail_RepoError testa a propagação de erro do repositório.
func TestMostrarProjetos_Fail_RepoError(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Projeto{}, apperror.NewDBError("consulta de projetos", errors.New("connection refused")))

	_, err := svc.MostrarProjetos(context.Background())

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

// TestRetornarDadosRelatorio_SemProjetos testa o relatório com a base vazia.
func TestRetornarDadosRelatorio_SemProjetos(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Projeto{}, nil)

	relatorio, err := svc.RetornarDadosRelatorio(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, relatorio.QuantidadePorStatus)
	assert.Empty(t, relatorio.TotalOrcadoPorStatus)
	assert.Equal(t, int64(0), relatorio.MediaDuracaoProjetosEncerrados)
	assert.Equal(t, int64(0), relatorio.TotalMembrosUnicos)
	mockRepo.AssertExpectations(t)
}

// TestRetornarDadosRelatorio_Agregacao testa contagem, orçamento, média e membros únicos.
func TestRetornarDadosRelatorio_Agregacao(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	termino := domain.NovaData(2026, 8, 1)
	projetos := []domain.Projeto{
		{ID: 1, Nome: "A", Status: domain.StatusEmAnalise, Orcamento: 100, MembrosIDs: []int64{2, 3}},
		{ID: 2, Nome: "B", Status: domain.StatusEmAnalise, Orcamento: 150, MembrosIDs: []int64{3, 4}},
		{
			ID:          3,
			Nome:        "C",
			Status:      domain.StatusEncerrado,
			Orcamento:   200,
			MembrosIDs:  []int64{5},
			DataInicio:  domain.NovaData(2026, 1, 1),
			DataTermino: &termino,
		},
	}
	mockRepo.On("FindAll", mock.Anything).Return(projetos, nil)

	relatorio, err := svc.RetornarDadosRelatorio(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), relatorio.QuantidadePorStatus[domain.StatusEmAnalise])
	assert.Equal(t, int64(1), relatorio.QuantidadePorStatus[domain.StatusEncerrado])
	assert.Equal(t, float64(250), relatorio.TotalOrcadoPorStatus[domain.StatusEmAnalise])
	assert.Equal(t, float64(200), relatorio.TotalOrcadoPorStatus[domain.StatusEncerrado])
	assert.Equal(t, int64(7), relatorio.MediaDuracaoProjetosEncerrados)
	assert.Equal(t, int64(4), relatorio.TotalMembrosUnicos)
	mockRepo.AssertExpectations(t)
}

// TestRetornarDadosRelatorio_MediaInteira testa o arredondamento para baixo da média.
func TestRetornarDadosRelatorio_MediaInteira(t *testing.T) {
	svc, mockRepo, _ := novoServico()

	terminoA := domain.NovaData(2026, 4, 1)
	terminoB := domain.NovaData(2026, 8, 1)
	projetos := []domain.Projeto{
		{ID: 1, Nome: "A", Status: domain.StatusEncerrado, DataInicio: domain.NovaData(2026, 1, 1), DataTermino: &terminoA},
		{ID: 2, Nome: "B", Status: domain.StatusEncerrado, DataInicio: domain.NovaData(2026, 1, 1), DataTermino: &terminoB},
	}
	mockRepo.On("FindAll", mock.Anything).Return(projetos, nil)

	relatorio, err := svc.RetornarDadosRelatorio(context.Background())

	assert.NoError(t, err)
	// (3 + 7) / 2 = 5
	assert.Equal(t, int64(5), relatorio.MediaDuracaoProjetosEncerrados)
	mockRepo.AssertExpectations(t)
}
