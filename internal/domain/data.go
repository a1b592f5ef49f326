package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FormatoData é o formato brasileiro de datas usado em toda a API (dd/MM/yyyy).
const FormatoData = "02/01/2006"

// Data representa uma data de calendário, sem componente de horário.
// Serializa em JSON no formato dd/MM/yyyy e mapeia para colunas DATE no banco.
type Data struct {
	time.Time
}

// NovaData cria uma Data normalizada (meia-noite UTC).
func NovaData(ano int, mes time.Month, dia int) Data {
	return Data{time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// Hoje retorna a data atual, sem horário.
func Hoje() Data {
	agora := time.Now().UTC()
	return NovaData(agora.Year(), agora.Month(), agora.Day())
}

// ConverterData interpreta uma string no formato dd/MM/yyyy.
func ConverterData(valor string) (Data, error) {
	t, err := time.Parse(FormatoData, valor)
	if err != nil {
		return Data{}, fmt.Errorf("data inválida %q: esperado o formato dd/MM/yyyy", valor)
	}
	return Data{t}, nil
}

func (d Data) String() string {
	return d.Format(FormatoData)
}

// MarshalJSON serializa a data como "dd/MM/yyyy".
func (d Data) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(FormatoData) + `"`), nil
}

// UnmarshalJSON aceita "dd/MM/yyyy" ou null.
func (d *Data) UnmarshalJSON(b []byte) error {
	valor := strings.Trim(string(b), `"`)
	if valor == "null" || valor == "" {
		*d = Data{}
		return nil
	}
	convertida, err := ConverterData(valor)
	if err != nil {
		return err
	}
	*d = convertida
	return nil
}

// Value implementa driver.Valuer para persistir em colunas DATE.
func (d Data) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implementa sql.Scanner para ler colunas DATE.
func (d *Data) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NovaData(v.Year(), v.Month(), v.Day())
		return nil
	case nil:
		*d = Data{}
		return nil
	default:
		return fmt.Errorf("não é possível converter %T para domain.Data", src)
	}
}

// DiasEntre retorna a quantidade de dias de calendário entre inicio e fim.
func DiasEntre(inicio, fim Data) int64 {
	a := time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(fim.Year(), fim.Month(), fim.Day(), 0, 0, 0, 0, time.UTC)
	return int64(b.Sub(a) / (24 * time.Hour))
}

// MesesEntre retorna a quantidade de meses completos entre inicio e fim,
// truncando o mês parcial (mesma semântica de ChronoUnit.MONTHS).
func MesesEntre(inicio, fim Data) int64 {
	meses := int64(fim.Year()-inicio.Year())*12 + int64(fim.Month()-inicio.Month())
	if fim.Day() < inicio.Day() {
		meses--
	}
	return meses
}
