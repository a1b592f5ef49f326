package membrorepo

import (
	"context"
	"database/sql"
	"time"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/logger"
)

// MembroRepository é a implementação local (tabela membros) do diretório de
// membros. O cargo é gravado como texto livre e convertido para o enum de
// domínio na leitura, de modo que nenhuma regra de negócio compare strings.
type MembroRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewMembroRepository cria uma nova instância do MembroRepository, injetando o DB.
func NewMembroRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *MembroRepository {
	return &MembroRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// ConsultarID busca um membro pelo ID. Retorna (nil, nil) quando não existe,
// implementando domain.DiretorioMembros.
func (r *MembroRepository) ConsultarID(ctx context.Context, id int64) (*domain.Membro, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const membroSQL = `SELECT id, nome, cargo FROM membros WHERE id = $1`

	var (
		membro domain.Membro
		cargo  string
	)

	err := r.DB.QueryRowContext(ctxTimeout, membroSQL, id).Scan(&membro.ID, &membro.Nome, &cargo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError("Falha ao buscar membro no DB", err)
	}

	// Conversão do texto livre do cargo na borda de leitura.
	if membro.Cargo, err = domain.ConverterCargo(cargo); err != nil {
		return nil, apperror.NewInternalError("Cargo inválido armazenado no diretório de membros.", err)
	}

	return &membro, nil
}

// ListarTodos retorna todos os membros do diretório.
func (r *MembroRepository) ListarTodos(ctx context.Context) ([]domain.Membro, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const membrosSQL = `SELECT id, nome, cargo FROM membros ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, membrosSQL)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao listar membros no DB", err)
	}
	defer rows.Close()

	membros := []domain.Membro{}
	for rows.Next() {
		var (
			membro domain.Membro
			cargo  string
		)
		if scanErr := rows.Scan(&membro.ID, &membro.Nome, &cargo); scanErr != nil {
			return nil, apperror.NewDBError("Falha ao ler membro do DB", scanErr)
		}
		if membro.Cargo, err = domain.ConverterCargo(cargo); err != nil {
			return nil, apperror.NewInternalError("Cargo inválido armazenado no diretório de membros.", err)
		}
		membros = append(membros, membro)
	}
	if err = rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar membros do DB", err)
	}

	return membros, nil
}

// Criar insere um novo membro, gravando o cargo com o texto legível.
func (r *MembroRepository) Criar(ctx context.Context, membro domain.Membro) (domain.Membro, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO membros (nome, cargo) VALUES ($1, $2) RETURNING id`

	err := r.DB.QueryRowContext(ctxTimeout, insertSQL, membro.Nome, membro.Cargo.Descricao()).Scan(&membro.ID)
	if err != nil {
		return domain.Membro{}, apperror.NewDBError("Falha ao inserir membro no DB", err)
	}

	r.logger.Debug("Membro persistido.", map[string]interface{}{"membro_id": membro.ID})
	return membro, nil
}
