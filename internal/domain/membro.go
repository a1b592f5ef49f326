package domain

import (
	"context"
	"fmt"
	"strings"
)

// Cargo é o papel de um membro no diretório.
// O diretório devolve o cargo como texto livre; a conversão para este enum
// acontece na borda (repositório/cliente), nunca dentro das regras de negócio.
type Cargo string

const (
	CargoGerente     Cargo = "GERENTE"
	CargoFuncionario Cargo = "FUNCIONARIO"
)

var descricaoCargo = map[Cargo]string{
	CargoGerente:     "Gerente",
	CargoFuncionario: "Funcionário",
}

// Descricao retorna o texto legível do cargo (e.g. "Funcionário").
func (c Cargo) Descricao() string {
	return descricaoCargo[c]
}

// ConverterCargo interpreta o texto livre do diretório de membros,
// ignorando maiúsculas e aceitando a grafia sem acento.
func ConverterCargo(texto string) (Cargo, error) {
	switch strings.ToLower(strings.TrimSpace(texto)) {
	case "gerente":
		return CargoGerente, nil
	case "funcionário", "funcionario":
		return CargoFuncionario, nil
	default:
		return "", fmt.Errorf("cargo inválido: %s", texto)
	}
}

// MarshalJSON serializa o cargo com o texto legível, como o diretório expõe.
func (c Cargo) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Descricao() + `"`), nil
}

// UnmarshalJSON aceita qualquer grafia reconhecida por ConverterCargo.
func (c *Cargo) UnmarshalJSON(b []byte) error {
	convertido, err := ConverterCargo(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*c = convertido
	return nil
}

// Membro é a visão somente-leitura de um membro do diretório.
type Membro struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Cargo Cargo  `json:"cargo"`
}

// DiretorioMembros é o contrato de consulta ao diretório de membros.
// A implementação real (tabela local, chamada HTTP) é injetada no serviço de
// projetos, que só conhece esta interface.
// ConsultarID retorna (nil, nil) quando o membro não existe.
type DiretorioMembros interface {
	ConsultarID(ctx context.Context, id int64) (*Membro, error)
}
