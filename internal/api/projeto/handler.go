package projeto

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
	"cadastroprojetos/internal/pkg/middleware"
)

// ProjetoService define o contrato que o Handler espera da camada de Serviço.
type ProjetoService interface {
	Criar(ctx context.Context, data domain.ProjetoRequest) error
	MostrarProjetos(ctx context.Context) ([]domain.ProjetoResponse, error)
	RetornarDadosRelatorio(ctx context.Context) (domain.Relatorio, error)
	AdicionarMembros(ctx context.Context, id int64, data domain.AssociarMembrosRequest) (domain.ProjetoResponse, error)
	AvancarStatus(ctx context.Context, id int64) error
	CancelarProjeto(ctx context.Context, id int64) error
	DeletarProjeto(ctx context.Context, id int64) error
}

// Handler agrupa todos os métodos de Handler de projetos.
type Handler struct {
	Service ProjetoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProjetoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	// Tradução única de erro de domínio para status HTTP.
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) são registrados em nível debug
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// extrairID lê o path value {id} das rotas de projeto.
func extrairID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("O ID do projeto deve ser um número inteiro.")
	}
	return id, nil
}

// CriarHandler lida com a requisição POST /projeto/criar.
// @Summary Criar Projeto
// @Description Valida a equipe proposta, classifica o risco e cadastra o projeto com status EM_ANALISE.
// @Tags projetos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projeto body domain.ProjetoRequest true "Dados do projeto"
// @Success 201 {string} string "Projeto criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou quantidade de membros fora do limite"
// @Failure 404 {object} domain.ErrorResponse "Gerente ou membro não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Regra de negócio violada (cargo, alocação, gerente como membro)"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/criar [post]
func (h *Handler) CriarHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Debug("Criação de projeto solicitada.", map[string]interface{}{
			"login": claims.Login,
			"role":  claims.Role,
		})
	}

	var data domain.ProjetoRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), 0)
		return
	}

	err := h.Service.Criar(ctx, data)
	h.handleServiceResponse(w, r, "Projeto criado com sucesso", err, http.StatusCreated)
}

// MostrarProjetosHandler lida com a requisição GET /projeto/mostrarProjetos.
// @Summary Buscar dados de todos os projetos
// @Tags projetos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ProjetoResponse
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/mostrarProjetos [get]
func (h *Handler) MostrarProjetosHandler(w http.ResponseWriter, r *http.Request) {
	projetos, err := h.Service.MostrarProjetos(r.Context())
	h.handleServiceResponse(w, r, projetos, err, http.StatusOK)
}

// GerarRelatorioHandler lida com a requisição GET /projeto/gerarRelatorio.
// @Summary Retornar dados para gerar relatório
// @Description Agrega contagem e total orçado por status, média de duração dos encerrados e membros únicos.
// @Tags projetos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Relatorio
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/gerarRelatorio [get]
func (h *Handler) GerarRelatorioHandler(w http.ResponseWriter, r *http.Request) {
	relatorio, err := h.Service.RetornarDadosRelatorio(r.Context())
	h.handleServiceResponse(w, r, relatorio, err, http.StatusOK)
}

// AssociarMembrosHandler lida com a requisição PATCH /projeto/associar/{id}.
// @Summary Associar membros ao projeto
// @Tags projetos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do projeto"
// @Param membros body domain.AssociarMembrosRequest true "IDs dos novos membros"
// @Success 202 {object} domain.ProjetoResponse
// @Failure 400 {object} domain.ErrorResponse "Lista vazia, membro duplicado ou limite excedido"
// @Failure 404 {object} domain.ErrorResponse "Projeto ou membro não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Regra de negócio violada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/associar/{id} [patch]
func (h *Handler) AssociarMembrosHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extrairID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	var data domain.AssociarMembrosRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), 0)
		return
	}

	resposta, err := h.Service.AdicionarMembros(r.Context(), id, data)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}
	h.handleServiceResponse(w, r, resposta, nil, http.StatusAccepted)
}

// AvancarStatusHandler lida com a requisição PATCH /projeto/avancarStatus/{id}.
// @Summary Atualizar para próximo status
// @Tags projetos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do projeto"
// @Success 200 {string} string "Status atualizado com sucesso"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Projeto já está em status terminal"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/avancarStatus/{id} [patch]
func (h *Handler) AvancarStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extrairID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	err = h.Service.AvancarStatus(r.Context(), id)
	h.handleServiceResponse(w, r, "Status atualizado com sucesso", err, http.StatusOK)
}

// CancelarProjetoHandler lida com a requisição PATCH /projeto/cancelar/{id}.
// @Summary Cancelar um projeto
// @Tags projetos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do projeto"
// @Success 200 {string} string "Projeto cancelado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Projeto já encerrado ou cancelado"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/cancelar/{id} [patch]
func (h *Handler) CancelarProjetoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extrairID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	err = h.Service.CancelarProjeto(r.Context(), id)
	h.handleServiceResponse(w, r, "Projeto cancelado com sucesso", err, http.StatusOK)
}

// DeletarProjetoHandler lida com a requisição DELETE /projeto/deletar/{id}.
// @Summary Deletar um projeto
// @Tags projetos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do projeto"
// @Success 200 {string} string "Projeto deletado com sucesso"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projeto/deletar/{id} [delete]
func (h *Handler) DeletarProjetoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := extrairID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	err = h.Service.DeletarProjeto(r.Context(), id)
	h.handleServiceResponse(w, r, "Projeto deletado com sucesso", err, http.StatusOK)
}
