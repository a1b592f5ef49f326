package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// AuthService define o contrato para as operações de registro e login.
type AuthService interface {
	Register(ctx context.Context, data domain.RegisterRequest) (domain.User, error)
	Login(ctx context.Context, login string, senha string) (string, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
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

	// Log apenas de erros graves
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de autenticação:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// RegisterHandler lida com a requisição POST /auth/register.
// @Summary Registrar usuário
// @Description Cria um novo usuário, hasheia a senha e salva no banco de dados.
// @Tags auth
// @Accept json
// @Produce json
// @Param registro body domain.RegisterRequest true "Credenciais de registro (login, senha e role)"
// @Success 201 {object} domain.User "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou role desconhecida"
// @Failure 409 {object} domain.ErrorResponse "Login já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var data domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	user, err := h.Service.Register(r.Context(), data)
	h.handleServiceResponse(w, r, user, err, http.StatusCreated)
}

// LoginHandler lida com a requisição POST /auth/login.
// @Summary Realizar login
// @Description Autentica as credenciais e emite um token JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body domain.AuthenticationRequest true "Credenciais de acesso"
// @Success 200 {object} domain.LoginResponse "Login realizado com sucesso"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var data domain.AuthenticationRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	tokenString, err := h.Service.Login(r.Context(), data.Login, data.Senha)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, domain.LoginResponse{Token: tokenString}, nil, http.StatusOK)
}
