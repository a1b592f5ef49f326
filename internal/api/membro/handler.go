package membro

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// MembroService define o contrato que o Handler espera da camada de Serviço.
type MembroService interface {
	Criar(ctx context.Context, membro domain.Membro) (domain.Membro, error)
	ConsultarMembro(ctx context.Context, id int64) (domain.Membro, error)
	ListarMembros(ctx context.Context) ([]domain.Membro, error)
}

// Handler agrupa os métodos de Handler do diretório de membros.
type Handler struct {
	Service MembroService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc MembroService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse padroniza o tratamento de erros e respostas HTTP.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error("Erro interno no diretório de membros:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// CriarMembroHandler lida com a requisição POST /membro/criar.
// @Summary Cadastrar membro no diretório
// @Tags membros
// @Accept json
// @Produce json
// @Param membro body domain.Membro true "Dados do membro (nome e cargo)"
// @Success 201 {object} domain.Membro "Membro criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Nome ausente ou cargo inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /membro/criar [post]
func (h *Handler) CriarMembroHandler(w http.ResponseWriter, r *http.Request) {
	var data domain.Membro
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	criado, err := h.Service.Criar(r.Context(), data)
	h.handleServiceResponse(w, r, criado, err, http.StatusCreated)
}

// ConsultarMembroHandler lida com a requisição GET /membro/retornarMembro/{id}.
// @Summary Consultar membro por ID
// @Tags membros
// @Produce json
// @Param id path int true "ID do membro"
// @Success 200 {object} domain.Membro
// @Failure 404 {object} domain.ErrorResponse "Membro não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /membro/retornarMembro/{id} [get]
func (h *Handler) ConsultarMembroHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("O ID do membro deve ser um número inteiro."), 0)
		return
	}

	membro, err := h.Service.ConsultarMembro(r.Context(), id)
	h.handleServiceResponse(w, r, membro, err, http.StatusOK)
}

// ListarMembrosHandler lida com a requisição GET /membro/retornarMembros.
// @Summary Listar todos os membros do diretório
// @Tags membros
// @Produce json
// @Success 200 {array} domain.Membro
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /membro/retornarMembros [get]
func (h *Handler) ListarMembrosHandler(w http.ResponseWriter, r *http.Request) {
	membros, err := h.Service.ListarMembros(r.Context())
	h.handleServiceResponse(w, r, membros, err, http.StatusOK)
}
