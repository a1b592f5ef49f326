package domain

import "time"

// User representa a entidade de usuário autenticável do sistema.
type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Senha     string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

// Constantes para os papéis de usuário
const (
	RoleAdministrador UserRole = "ADMINISTRADOR"
	RoleMembro        UserRole = "MEMBRO"
)

// RegisterRequest representa o payload de entrada para o registro.
type RegisterRequest struct {
	Login string   `json:"login" example:"maria"`
	Senha string   `json:"senha" example:"s3nh4-f0rte"`
	Role  UserRole `json:"role" example:"ADMINISTRADOR"`
}

// AuthenticationRequest representa o payload de entrada para o login.
type AuthenticationRequest struct {
	Login string `json:"login" example:"maria"`
	Senha string `json:"senha" example:"s3nh4-f0rte"`
}

// LoginResponse carrega o token JWT emitido após autenticação.
type LoginResponse struct {
	Token string `json:"token"`
}
