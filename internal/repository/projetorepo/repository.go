package projetorepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"cadastroprojetos/internal/domain"
	apperror "cadastroprojetos/internal/errors"
	"cadastroprojetos/internal/pkg/cache"
	"cadastroprojetos/internal/pkg/logger"
)

// Chave de cache por projeto (estratégia Cache-Aside no FindByID).
const projetoCacheKey = "projeto:%d"

// ProjetoRepository persiste projetos e a lista ordenada de membros na tabela
// filha projeto_membros.
type ProjetoRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProjetoRepository cria e retorna uma nova instância do Repositório,
// injetando as dependências de Infraestrutura (DB e Cache).
func NewProjetoRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ProjetoRepository {
	return &ProjetoRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Save persiste um novo Projeto e a sua lista de membros em uma única transação.
func (r *ProjetoRepository) Save(ctx context.Context, projeto domain.Projeto) (domain.Projeto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Projeto{}, apperror.NewDBError("failed to start tx", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const projetoSQL = `INSERT INTO projeto (nome, data_inicio, previsao_termino, data_termino, orcamento, descricao, gerente_id, status, risco)
                        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
                        RETURNING id`

	err = tx.QueryRowContext(ctxTimeout, projetoSQL,
		projeto.Nome,
		projeto.DataInicio,
		projeto.PrevisaoTermino,
		dataTerminoParam(projeto.DataTermino),
		projeto.Orcamento,
		projeto.Descricao,
		projeto.GerenteID,
		string(projeto.Status),
		string(projeto.Risco),
	).Scan(&projeto.ID)

	if err != nil {
		return domain.Projeto{}, apperror.NewDBError("failed to insert projeto", err)
	}

	if err = inserirMembros(ctxTimeout, tx, projeto.ID, projeto.MembrosIDs); err != nil {
		return domain.Projeto{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Projeto{}, apperror.NewDBError("failed to commit tx", err)
	}

	r.logger.Debug("Projeto persistido.", map[string]interface{}{"projeto_id": projeto.ID})
	return projeto, nil
}

// FindByID busca um projeto pelo ID, utilizando a estratégia Cache-Aside.
func (r *ProjetoRepository) FindByID(ctx context.Context, id int64) (domain.Projeto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(projetoCacheKey, id)
	var projeto domain.Projeto

	// 1. Tentar obter do Cache (Redis)
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		if json.Unmarshal([]byte(cachedData), &projeto) == nil {
			return projeto, nil
		}
		// Desserialização falhou: segue para o DB
	} else if err != cache.ErrCacheMiss {
		// Erro real de cache (conexão perdida): logamos e seguimos para o DB.
		r.logger.Warn("Falha ao ler projeto do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// 2. Busca no Banco de Dados (PostgreSQL)
	const projetoSQL = `
		SELECT id, nome, data_inicio, previsao_termino, data_termino, orcamento, descricao, gerente_id, status, risco
		FROM projeto
		WHERE id = $1`

	row := r.DB.QueryRowContext(ctxTimeout, projetoSQL, id)
	projeto, err = scanProjeto(row)

	if err == sql.ErrNoRows {
		return domain.Projeto{}, apperror.NewNotFoundError(fmt.Sprintf("Projeto com ID %d não encontrado", id))
	}
	if err != nil {
		return domain.Projeto{}, apperror.NewDBError("Falha ao buscar projeto no DB", err)
	}

	// 3. Carrega a lista ordenada de membros
	projeto.MembrosIDs, err = r.buscarMembros(ctxTimeout, id)
	if err != nil {
		return domain.Projeto{}, err
	}

	// 4. Popula o cache para futuras requisições
	if projetoJSON, marshalErr := json.Marshal(projeto); marshalErr == nil {
		r.Cache.Set(ctxTimeout, key, projetoJSON, r.CacheTTL)
	}

	return projeto, nil
}

// FindAll retorna todos os projetos com as respectivas listas de membros.
// Sem paginação: o volume esperado de projetos é pequeno.
func (r *ProjetoRepository) FindAll(ctx context.Context) ([]domain.Projeto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const projetosSQL = `
		SELECT id, nome, data_inicio, previsao_termino, data_termino, orcamento, descricao, gerente_id, status, risco
		FROM projeto
		ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, projetosSQL)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao listar projetos no DB", err)
	}
	defer rows.Close()

	projetos := []domain.Projeto{}
	indicePorID := map[int64]int{}
	for rows.Next() {
		projeto, scanErr := scanProjeto(rows)
		if scanErr != nil {
			return nil, apperror.NewDBError("Falha ao ler projeto do DB", scanErr)
		}
		projeto.MembrosIDs = []int64{}
		indicePorID[projeto.ID] = len(projetos)
		projetos = append(projetos, projeto)
	}
	if err = rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar projetos do DB", err)
	}

	// Uma única consulta para as listas de membros de todos os projetos.
	const membrosSQL = `
		SELECT projeto_id, membro_id
		FROM projeto_membros
		ORDER BY projeto_id, posicao`

	membroRows, err := r.DB.QueryContext(ctxTimeout, membrosSQL)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao listar membros dos projetos no DB", err)
	}
	defer membroRows.Close()

	for membroRows.Next() {
		var projetoID, membroID int64
		if scanErr := membroRows.Scan(&projetoID, &membroID); scanErr != nil {
			return nil, apperror.NewDBError("Falha ao ler membro de projeto do DB", scanErr)
		}
		if i, ok := indicePorID[projetoID]; ok {
			projetos[i].MembrosIDs = append(projetos[i].MembrosIDs, membroID)
		}
	}
	if err = membroRows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar membros dos projetos no DB", err)
	}

	return projetos, nil
}

// Update regrava os campos mutáveis do projeto e a lista de membros em uma
// transação, invalidando a entrada de cache correspondente.
func (r *ProjetoRepository) Update(ctx context.Context, projeto domain.Projeto) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return apperror.NewDBError("failed to start tx", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const updateSQL = `
		UPDATE projeto
		SET nome = $1, data_inicio = $2, previsao_termino = $3, data_termino = $4,
		    orcamento = $5, descricao = $6, gerente_id = $7, status = $8, risco = $9
		WHERE id = $10`

	result, err := tx.ExecContext(ctxTimeout, updateSQL,
		projeto.Nome,
		projeto.DataInicio,
		projeto.PrevisaoTermino,
		dataTerminoParam(projeto.DataTermino),
		projeto.Orcamento,
		projeto.Descricao,
		projeto.GerenteID,
		string(projeto.Status),
		string(projeto.Risco),
		projeto.ID,
	)
	if err != nil {
		return apperror.NewDBError("failed to update projeto", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to check update result", err)
	}
	if affected == 0 {
		err = apperror.NewNotFoundError(fmt.Sprintf("Projeto com ID %d não encontrado", projeto.ID))
		return err
	}

	// A lista de membros é regravada por completo para preservar a ordem.
	if _, err = tx.ExecContext(ctxTimeout, `DELETE FROM projeto_membros WHERE projeto_id = $1`, projeto.ID); err != nil {
		return apperror.NewDBError("failed to clear projeto members", err)
	}
	if err = inserirMembros(ctxTimeout, tx, projeto.ID, projeto.MembrosIDs); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return apperror.NewDBError("failed to commit tx", err)
	}

	r.invalidar(ctxTimeout, projeto.ID)
	return nil
}

// Delete remove um projeto; a tabela filha cai junto por ON DELETE CASCADE.
func (r *ProjetoRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM projeto WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDBError("failed to delete projeto", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Projeto com ID %d não encontrado", id))
	}

	r.invalidar(ctxTimeout, id)
	return nil
}

// ContarProjetosMembroAtivo conta em quantos projetos com status fora da lista
// informada o membro aparece. Usado pela regra de alocação máxima.
func (r *ProjetoRepository) ContarProjetosMembroAtivo(ctx context.Context, membroID int64, statusExcluidos []domain.Status) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const countSQL = `
		SELECT COUNT(*)
		FROM projeto p
		JOIN projeto_membros m ON m.projeto_id = p.id
		WHERE m.membro_id = $1
		  AND p.status <> ALL($2)`

	excluidos := make([]string, len(statusExcluidos))
	for i, s := range statusExcluidos {
		excluidos[i] = string(s)
	}

	var total int64
	err := r.DB.QueryRowContext(ctxTimeout, countSQL, membroID, pq.Array(excluidos)).Scan(&total)
	if err != nil {
		return 0, apperror.NewDBError("Falha ao contar projetos ativos do membro", err)
	}

	return total, nil
}

// --- Auxiliares ---

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProjeto mapeia uma linha da tabela projeto para a entidade, convertendo
// os enums na borda.
func scanProjeto(row rowScanner) (domain.Projeto, error) {
	var (
		projeto     domain.Projeto
		dataTermino sql.NullTime
		status      string
		risco       string
	)

	err := row.Scan(
		&projeto.ID,
		&projeto.Nome,
		&projeto.DataInicio,
		&projeto.PrevisaoTermino,
		&dataTermino,
		&projeto.Orcamento,
		&projeto.Descricao,
		&projeto.GerenteID,
		&status,
		&risco,
	)
	if err != nil {
		return domain.Projeto{}, err
	}

	if dataTermino.Valid {
		d := domain.NovaData(dataTermino.Time.Year(), dataTermino.Time.Month(), dataTermino.Time.Day())
		projeto.DataTermino = &d
	}

	if projeto.Status, err = domain.ConverterStatus(status); err != nil {
		return domain.Projeto{}, err
	}
	if projeto.Risco, err = domain.ConverterRisco(risco); err != nil {
		return domain.Projeto{}, err
	}

	return projeto, nil
}

// buscarMembros carrega a lista de membros de um projeto na ordem de inclusão.
func (r *ProjetoRepository) buscarMembros(ctx context.Context, projetoID int64) ([]int64, error) {
	const membrosSQL = `SELECT membro_id FROM projeto_membros WHERE projeto_id = $1 ORDER BY posicao`

	rows, err := r.DB.QueryContext(ctx, membrosSQL, projetoID)
	if err != nil {
		return nil, apperror.NewDBError("Falha ao buscar membros do projeto no DB", err)
	}
	defer rows.Close()

	membros := []int64{}
	for rows.Next() {
		var membroID int64
		if scanErr := rows.Scan(&membroID); scanErr != nil {
			return nil, apperror.NewDBError("Falha ao ler membro do projeto no DB", scanErr)
		}
		membros = append(membros, membroID)
	}
	if err = rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao iterar membros do projeto no DB", err)
	}

	return membros, nil
}

// inserirMembros grava a lista de membros preservando a posição de inclusão.
func inserirMembros(ctx context.Context, tx *sql.Tx, projetoID int64, membrosIDs []int64) error {
	const membroSQL = `INSERT INTO projeto_membros (projeto_id, membro_id, posicao) VALUES ($1,$2,$3)`

	for posicao, membroID := range membrosIDs {
		if _, err := tx.ExecContext(ctx, membroSQL, projetoID, membroID, posicao); err != nil {
			return apperror.NewDBError("failed to insert projeto member", err)
		}
	}
	return nil
}

// dataTerminoParam converte o ponteiro opcional para o driver (NULL quando ausente).
func dataTerminoParam(d *domain.Data) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

// invalidar remove a entrada de cache do projeto após escrita.
func (r *ProjetoRepository) invalidar(ctx context.Context, id int64) {
	key := fmt.Sprintf(projetoCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache do projeto.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
