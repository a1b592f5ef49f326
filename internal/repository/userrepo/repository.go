package userrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// UserRepository persiste os usuários autenticáveis do sistema.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Save insere um novo usuário no banco de dados.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	const insertSQL = `INSERT INTO users (login, senha, role, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5)
	                   RETURNING id`

	err := r.DB.QueryRowContext(
		ctxTimeout,
		insertSQL,
		user.Login,
		user.Senha,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to insert user", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "login": user.Login})
	return user, nil
}

// FindByLogin busca um usuário pelo login.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const selectSQL = `SELECT id, login, senha, role, created_at, updated_at
	                   FROM users
	                   WHERE login = $1`

	var (
		user domain.User
		role string
	)

	err := r.DB.QueryRowContext(ctxTimeout, selectSQL, login).Scan(
		&user.ID,
		&user.Login,
		&user.Senha,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com login %s não encontrado", login))
	}
	if err != nil {
		return domain.User{}, apperror.NewDBError("Falha ao buscar usuário no DB", err)
	}

	user.Role = domain.UserRole(role)
	return user, nil
}
