package projetoservice

import (
	"context"
	"fmt"
	"strings"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// Limites das regras de composição de equipe e classificação de risco.
const (
	maxMembrosPorProjeto = 10
	maxProjetosPorMembro = 3
	orcamentoLimiteBaixo = 100000
	orcamentoPisoMedio   = 100001
	orcamentoTetoMedio   = 500000
	duracaoLimiteBaixo   = 90
	duracaoTetoMedio     = 180
)

// ProjetoRepository define o contrato que este Serviço espera da camada de
// Persistência.
type ProjetoRepository interface {
	Save(ctx context.Context, projeto domain.Projeto) (domain.Projeto, error)
	FindByID(ctx context.Context, id int64) (domain.Projeto, error)
	FindAll(ctx context.Context) ([]domain.Projeto, error)
	Update(ctx context.Context, projeto domain.Projeto) error
	Delete(ctx context.Context, id int64) error
	ContarProjetosMembroAtivo(ctx context.Context, membroID int64, statusExcluidos []domain.Status) (int64, error)
}

// Service orquestra o ciclo de vida dos projetos: validação de equipe,
// criação com classificação de risco, avanço de status, cancelamento,
// exclusão, associação de membros e relatório agregado.
type Service struct {
	repo      ProjetoRepository
	diretorio domain.DiretorioMembros
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Projetos.
func NewService(repo ProjetoRepository, diretorio domain.DiretorioMembros, log logger.Logger) *Service {
	return &Service{repo: repo, diretorio: diretorio, logger: log}
}

// --- Validação de equipe ---

// ValidarEquipe compõe a validação do gerente e da lista de membros proposta.
// A primeira falha aborta a operação inteira; nada é persistido parcialmente.
func (s *Service) ValidarEquipe(ctx context.Context, gerenteID int64, membrosIDs []int64) error {
	if err := s.ValidarGerente(ctx, gerenteID, membrosIDs); err != nil {
		return err
	}
	return s.ValidarQuantidadeMembros(ctx, membrosIDs)
}

// ValidarGerente confere que o gerente existe no diretório, tem cargo de
// Gerente e não aparece na lista de membros.
func (s *Service) ValidarGerente(ctx context.Context, gerenteID int64, membrosIDs []int64) error {
	gerente, err := s.diretorio.ConsultarID(ctx, gerenteID)
	if err != nil {
		return err
	}

	if gerente == nil {
		return apperror.NewNotFoundError("Gerente não encontrado")
	}
	if gerente.Cargo != domain.CargoGerente {
		return apperror.NewBusinessRuleError("Membro não pode ser um Gerente")
	}
	for _, membroID := range membrosIDs {
		if membroID == gerenteID {
			return apperror.NewBusinessRuleError("Gerente não pode ser um membro")
		}
	}

	return nil
}

// ValidarQuantidadeMembros aplica primeiro as checagens estruturais baratas
// (tamanho e duplicados) e só então consulta o diretório membro a membro, na
// ordem da lista.
func (s *Service) ValidarQuantidadeMembros(ctx context.Context, membrosIDs []int64) error {
	if len(membrosIDs) == 0 || len(membrosIDs) > maxMembrosPorProjeto {
		return apperror.NewValidationError("Quantidade inválida de membros")
	}

	distintos := map[int64]struct{}{}
	for _, membroID := range membrosIDs {
		distintos[membroID] = struct{}{}
	}
	if len(distintos) != len(membrosIDs) {
		return apperror.NewValidationError("Há membros repetidos")
	}

	for _, membroID := range membrosIDs {
		if err := s.ValidarMembroIndividual(ctx, membroID); err != nil {
			return err
		}
	}

	return nil
}

// ValidarMembroIndividual confere que o membro existe, tem cargo de
// Funcionário e ainda pode ser alocado (menos de 3 projetos ativos).
func (s *Service) ValidarMembroIndividual(ctx context.Context, membroID int64) error {
	membro, err := s.diretorio.ConsultarID(ctx, membroID)
	if err != nil {
		return err
	}

	if membro == nil {
		return apperror.NewNotFoundError(fmt.Sprintf("Membro do código %d não encontrado", membroID))
	}
	if membro.Cargo != domain.CargoFuncionario {
		return apperror.NewBusinessRuleError("Membro com cargo diferente de funcionário")
	}

	podeSerAlocado, err := s.membroPodeSerAlocado(ctx, membroID)
	if err != nil {
		return err
	}
	if !podeSerAlocado {
		return apperror.NewBusinessRuleError(fmt.Sprintf("Membro com o ID %d já está em 3 ou mais projetos", membroID))
	}

	return nil
}

// membroPodeSerAlocado consulta quantos projetos não terminados incluem o
// membro. Projetos encerrados e cancelados não contam para o limite.
func (s *Service) membroPodeSerAlocado(ctx context.Context, membroID int64) (bool, error) {
	total, err := s.repo.ContarProjetosMembroAtivo(ctx, membroID, []domain.Status{domain.StatusEncerrado, domain.StatusCancelado})
	if err != nil {
		return false, err
	}
	return total < maxProjetosPorMembro, nil
}

// --- Criação e classificação de risco ---

// Criar valida a equipe proposta, monta o projeto com status EM_ANALISE,
// classifica o risco e persiste. Nenhuma falha de validação gera efeito
// colateral.
func (s *Service) Criar(ctx context.Context, data domain.ProjetoRequest) error {
	s.logger.Debug("Iniciando criação de projeto no serviço.", map[string]interface{}{"nome": data.Nome})

	if strings.TrimSpace(data.Nome) == "" {
		return apperror.NewValidationError("O nome do projeto é obrigatório")
	}
	if data.DataInicio.IsZero() || data.PrevisaoTermino.IsZero() {
		return apperror.NewValidationError("Data de início e previsão de término são obrigatórias")
	}
	if data.Orcamento < 0 {
		return apperror.NewValidationError("O orçamento não pode ser negativo")
	}

	if err := s.ValidarEquipe(ctx, data.GerenteID, data.MembrosIDs); err != nil {
		s.logger.Warn("Equipe proposta reprovada na validação.", map[string]interface{}{"gerente_id": data.GerenteID, "error": err.Error()})
		return err
	}

	projeto := domain.Projeto{
		Nome:            data.Nome,
		DataInicio:      data.DataInicio,
		PrevisaoTermino: data.PrevisaoTermino,
		DataTermino:     data.DataTermino,
		Orcamento:       data.Orcamento,
		Descricao:       data.Descricao,
		GerenteID:       data.GerenteID,
		MembrosIDs:      data.MembrosIDs,
		Status:          domain.StatusEmAnalise,
	}

	dias := domain.DiasEntre(data.DataInicio, data.PrevisaoTermino)
	projeto.Risco = classificarRisco(data.Orcamento, dias)

	criado, err := s.repo.Save(ctx, projeto)
	if err != nil {
		s.logger.Error("Falha ao salvar projeto no repositório.", err)
		return err
	}

	s.logger.Info("Projeto criado com sucesso.", map[string]interface{}{"projeto_id": criado.ID, "risco": criado.Risco})
	return nil
}

// classificarRisco aplica a tabela de risco em ordem fixa de avaliação:
// BAIXO, depois MEDIO, senão ALTO. As condições não são mutuamente exclusivas;
// a ordem dos ramos faz parte da regra e não deve ser alterada.
func classificarRisco(orcamento float64, dias int64) domain.ClassificacaoRisco {
	if orcamento <= orcamentoLimiteBaixo && dias <= duracaoLimiteBaixo {
		return domain.RiscoBaixo
	}
	if (orcamento > orcamentoPisoMedio && orcamento <= orcamentoTetoMedio) || (dias > duracaoLimiteBaixo && dias < duracaoTetoMedio) {
		return domain.RiscoMedio
	}
	return domain.RiscoAlto
}

// --- Consulta ---

// MostrarProjetos retorna a visão de todos os projetos cadastrados.
func (s *Service) MostrarProjetos(ctx context.Context) ([]domain.ProjetoResponse, error) {
	projetos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	respostas := make([]domain.ProjetoResponse, 0, len(projetos))
	for _, projeto := range projetos {
		respostas = append(respostas, transformarResponse(projeto))
	}
	return respostas, nil
}

// --- Relatório agregado ---

// RetornarDadosRelatorio agrega todos os projetos em uma única passagem:
// contagem e total orçado por status, média de duração (em meses inteiros)
// dos projetos encerrados e total de membros únicos.
func (s *Service) RetornarDadosRelatorio(ctx context.Context) (domain.Relatorio, error) {
	projetos, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Relatorio{}, err
	}

	relatorio := domain.Relatorio{
		QuantidadePorStatus:  map[domain.Status]int64{},
		TotalOrcadoPorStatus: map[domain.Status]float64{},
	}

	var (
		mesesEncerrados int64
		qtdEncerrados   int64
		membrosUnicos   = map[int64]struct{}{}
	)

	for _, projeto := range projetos {
		relatorio.QuantidadePorStatus[projeto.Status]++
		relatorio.TotalOrcadoPorStatus[projeto.Status] += projeto.Orcamento

		if projeto.Status == domain.StatusEncerrado && projeto.DataTermino != nil {
			mesesEncerrados += domain.MesesEntre(projeto.DataInicio, *projeto.DataTermino)
			qtdEncerrados++
		}

		for _, membroID := range projeto.MembrosIDs {
			membrosUnicos[membroID] = struct{}{}
		}
	}

	// Divisão inteira; zero projetos encerrados resulta em média zero.
	if qtdEncerrados > 0 {
		relatorio.MediaDuracaoProjetosEncerrados = mesesEncerrados / qtdEncerrados
	}
	relatorio.TotalMembrosUnicos = int64(len(membrosUnicos))

	return relatorio, nil
}

// --- Associação de membros ---

// AdicionarMembros valida e anexa novos membros ao final da lista do projeto,
// preservando a ordem atual.
func (s *Service) AdicionarMembros(ctx context.Context, id int64, data domain.AssociarMembrosRequest) (domain.ProjetoResponse, error) {
	projeto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ProjetoResponse{}, err
	}

	membrosAtuais := projeto.MembrosIDs
	membrosNovos := data.MembrosIDs

	if len(membrosNovos) == 0 {
		return domain.ProjetoResponse{}, apperror.NewValidationError("Lista de novos membros é obrigatória")
	}
	if len(membrosAtuais)+len(membrosNovos) > maxMembrosPorProjeto {
		return domain.ProjetoResponse{}, apperror.NewValidationError("Quantidade de membros excede 10")
	}

	atuais := map[int64]struct{}{}
	for _, membroID := range membrosAtuais {
		atuais[membroID] = struct{}{}
	}
	for _, membroID := range membrosNovos {
		if _, existe := atuais[membroID]; existe {
			return domain.ProjetoResponse{}, apperror.NewValidationError(fmt.Sprintf("Membro com o ID %d já está incluso no projeto", membroID))
		}
	}

	for _, membroID := range membrosNovos {
		if err := s.ValidarMembroIndividual(ctx, membroID); err != nil {
			return domain.ProjetoResponse{}, err
		}
	}

	projeto.MembrosIDs = append(membrosAtuais, membrosNovos...)
	if err := s.repo.Update(ctx, projeto); err != nil {
		return domain.ProjetoResponse{}, err
	}

	s.logger.Info("Membros associados ao projeto.", map[string]interface{}{"projeto_id": id, "novos_membros": len(membrosNovos)})
	return transformarResponse(projeto), nil
}

// --- Máquina de estados ---

// AvancarStatus move o projeto para o próximo status da tabela de transição.
// Ao chegar em ENCERRADO, a data de término é registrada como hoje.
func (s *Service) AvancarStatus(ctx context.Context, id int64) error {
	projeto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	proximo, ok := projeto.Status.Proximo()
	if !ok {
		return apperror.NewBusinessRuleError(fmt.Sprintf("Não é possível mudar o status de um projeto %s", strings.ToLower(projeto.Status.Descricao())))
	}

	if proximo == domain.StatusEncerrado {
		hoje := domain.Hoje()
		projeto.DataTermino = &hoje
	}

	projeto.Status = proximo
	if err := s.repo.Update(ctx, projeto); err != nil {
		return err
	}

	s.logger.Info("Status do projeto avançado.", map[string]interface{}{"projeto_id": id, "status": proximo})
	return nil
}

// CancelarProjeto marca o projeto como CANCELADO, desde que ele ainda não
// esteja em um status terminal.
func (s *Service) CancelarProjeto(ctx context.Context, id int64) error {
	projeto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if projeto.Status == domain.StatusEncerrado || projeto.Status == domain.StatusCancelado {
		return apperror.NewValidationError(fmt.Sprintf("Projeto já está com status de %s", projeto.Status))
	}

	projeto.Status = domain.StatusCancelado
	if err := s.repo.Update(ctx, projeto); err != nil {
		return err
	}

	s.logger.Info("Projeto cancelado.", map[string]interface{}{"projeto_id": id})
	return nil
}

// DeletarProjeto remove o projeto de forma incondicional depois de localizado.
// Não há guarda por status nem soft-delete.
func (s *Service) DeletarProjeto(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Projeto deletado.", map[string]interface{}{"projeto_id": id})
	return nil
}

// transformarResponse converte a entidade para a visão exposta pela API.
func transformarResponse(projeto domain.Projeto) domain.ProjetoResponse {
	return domain.ProjetoResponse{
		Nome:            projeto.Nome,
		DataInicio:      projeto.DataInicio,
		PrevisaoTermino: projeto.PrevisaoTermino,
		DataTermino:     projeto.DataTermino,
		Orcamento:       projeto.Orcamento,
		Descricao:       projeto.Descricao,
		GerenteID:       projeto.GerenteID,
		MembrosIDs:      projeto.MembrosIDs,
		Status:          projeto.Status,
		Risco:           projeto.Risco,
	}
}
