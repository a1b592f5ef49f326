package domain

import "fmt"

// Status representa o ciclo de vida fixo de um projeto.
// A ordem de avanço é sempre para frente; ENCERRADO e CANCELADO são terminais.
type Status string

const (
	StatusEmAnalise        Status = "EM_ANALISE"
	StatusAnaliseRealizada Status = "ANALISE_REALIZADA"
	StatusAnaliseAprovada  Status = "ANALISE_APROVADA"
	StatusIniciado         Status = "INICIADO"
	StatusPlanejado        Status = "PLANEJADO"
	StatusEmAndamento      Status = "EM_ANDAMENTO"
	StatusEncerrado        Status = "ENCERRADO"
	StatusCancelado        Status = "CANCELADO"
)

var descricaoStatus = map[Status]string{
	StatusEmAnalise:        "Em análise",
	StatusAnaliseRealizada: "Análise Realizada",
	StatusAnaliseAprovada:  "Análise Aprovada",
	StatusIniciado:         "Iniciado",
	StatusPlanejado:        "Planejado",
	StatusEmAndamento:      "Em andamento",
	StatusEncerrado:        "Encerrado",
	StatusCancelado:        "Cancelado",
}

// Descricao retorna o texto legível do status (e.g. "Em análise").
func (s Status) Descricao() string {
	return descricaoStatus[s]
}

// ConverterStatus valida um valor vindo do banco ou de requisições.
func ConverterStatus(valor string) (Status, error) {
	s := Status(valor)
	if _, ok := descricaoStatus[s]; !ok {
		return "", fmt.Errorf("status inválido: %s", valor)
	}
	return s, nil
}

// proximoStatus é a tabela explícita de transição do ciclo de vida.
// Status terminais não possuem entrada.
var proximoStatus = map[Status]Status{
	StatusEmAnalise:        StatusAnaliseRealizada,
	StatusAnaliseRealizada: StatusAnaliseAprovada,
	StatusAnaliseAprovada:  StatusIniciado,
	StatusIniciado:         StatusPlanejado,
	StatusPlanejado:        StatusEmAndamento,
	StatusEmAndamento:      StatusEncerrado,
}

// Proximo retorna o próximo status do ciclo de vida e false quando o status
// atual é terminal.
func (s Status) Proximo() (Status, bool) {
	proximo, ok := proximoStatus[s]
	return proximo, ok
}

// ClassificacaoRisco é o nível de risco calculado uma única vez na criação.
type ClassificacaoRisco string

const (
	RiscoBaixo ClassificacaoRisco = "BAIXO"
	RiscoMedio ClassificacaoRisco = "MEDIO"
	RiscoAlto  ClassificacaoRisco = "ALTO"
)

var descricaoRisco = map[ClassificacaoRisco]string{
	RiscoBaixo: "Baixo",
	RiscoMedio: "Médio",
	RiscoAlto:  "Alto",
}

// Descricao retorna o texto legível da classificação.
func (c ClassificacaoRisco) Descricao() string {
	return descricaoRisco[c]
}

// ConverterRisco valida um valor de classificação vindo do banco.
func ConverterRisco(valor string) (ClassificacaoRisco, error) {
	c := ClassificacaoRisco(valor)
	if _, ok := descricaoRisco[c]; !ok {
		return "", fmt.Errorf("classificação de risco inválida: %s", valor)
	}
	return c, nil
}

// Projeto é a entidade central do sistema.
// MembrosIDs mantém a ordem de inclusão, sem duplicados, nunca contém o
// gerente e tem no máximo 10 entradas. DataTermino só é preenchida quando o
// projeto chega a ENCERRADO.
type Projeto struct {
	ID              int64              `json:"id"`
	Nome            string             `json:"nome"`
	DataInicio      Data               `json:"dataInicio"`
	PrevisaoTermino Data               `json:"previsaoTermino"`
	DataTermino     *Data              `json:"dataTermino,omitempty"`
	Orcamento       float64            `json:"orcamento"`
	Descricao       string             `json:"descricao"`
	GerenteID       int64              `json:"gerenteId"`
	MembrosIDs      []int64            `json:"membrosIds"`
	Status          Status             `json:"status"`
	Risco           ClassificacaoRisco `json:"risco"`
}

// --- DTOs de entrada e saída da API ---

// ProjetoRequest é o payload de criação de projeto.
// @Description Payload de criação de projeto. Datas no formato dd/MM/yyyy.
type ProjetoRequest struct {
	Nome            string  `json:"nome" example:"Migração ERP"`
	DataInicio      Data    `json:"dataInicio" swaggertype:"string" example:"01/03/2026"`
	PrevisaoTermino Data    `json:"previsaoTermino" swaggertype:"string" example:"01/06/2026"`
	DataTermino     *Data   `json:"dataTermino,omitempty" swaggertype:"string" example:"25/12/2026"`
	Orcamento       float64 `json:"orcamento" example:"85000"`
	Descricao       string  `json:"descricao" example:"Substituição do ERP legado"`
	GerenteID       int64   `json:"gerenteId" example:"1"`
	MembrosIDs      []int64 `json:"membrosIds" example:"2,3,4"`
}

// AssociarMembrosRequest é o payload de associação de novos membros.
type AssociarMembrosRequest struct {
	MembrosIDs []int64 `json:"membrosIds" example:"5,6"`
}

// ProjetoResponse é a visão de um projeto devolvida pela API.
type ProjetoResponse struct {
	Nome            string             `json:"nome"`
	DataInicio      Data               `json:"dataInicio" swaggertype:"string"`
	PrevisaoTermino Data               `json:"previsaoTermino" swaggertype:"string"`
	DataTermino     *Data              `json:"dataTermino,omitempty" swaggertype:"string"`
	Orcamento       float64            `json:"orcamento"`
	Descricao       string             `json:"descricao"`
	GerenteID       int64              `json:"gerenteId"`
	MembrosIDs      []int64            `json:"membrosIds"`
	Status          Status             `json:"status"`
	Risco           ClassificacaoRisco `json:"risco"`
}

// Relatorio agrega os dados de todos os projetos cadastrados.
type Relatorio struct {
	QuantidadePorStatus            map[Status]int64   `json:"quantidadePorStatus"`
	TotalOrcadoPorStatus           map[Status]float64 `json:"totalOrcadoPorStatus"`
	MediaDuracaoProjetosEncerrados int64              `json:"mediaDuracaoProjetosEncerrados"`
	TotalMembrosUnicos             int64              `json:"totalMembrosUnicos"`
}
