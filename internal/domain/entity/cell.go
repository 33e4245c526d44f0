package entity

import (
	"encoding/json"
	"fmt"
)

// CellKind identifica o tipo de valor contido em uma célula de tabela.
type CellKind int

const (
	// CellEmpty cobre null, campo ausente e string vazia, que são
	// equivalentes no payload do backend.
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// CellValue é a união etiquetada dos valores possíveis de uma célula:
// número, texto ou vazio. O backend emite JSON solto (number | string | null)
// e a distinção precisa sobreviver à decodificação, já que 0 é um número
// válido e não pode ser confundido com célula vazia.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
}

// EmptyCell retorna uma célula sem valor.
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// NumberCell retorna uma célula numérica.
func NumberCell(v float64) CellValue {
	return CellValue{Kind: CellNumber, Number: v}
}

// TextCell retorna uma célula textual. Texto vazio equivale a célula vazia.
func TextCell(s string) CellValue {
	if s == "" {
		return EmptyCell()
	}
	return CellValue{Kind: CellText, Text: s}
}

// UnmarshalJSON decodifica number | string | null nas variantes da união.
// Valores de outros tipos (bool, objetos) são tolerados como texto bruto em
// vez de derrubar a decodificação do payload inteiro.
func (c *CellValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = EmptyCell()
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*c = NumberCell(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*c = TextCell(str)
		return nil
	}

	*c = TextCell(string(data))
	return nil
}

// MarshalJSON emite a célula no mesmo formato solto consumido do backend.
func (c CellValue) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNumber:
		return json.Marshal(c.Number)
	case CellText:
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

// String é usado apenas para depuração; a formatação de exibição fica no
// pacote render.
func (c CellValue) String() string {
	switch c.Kind {
	case CellNumber:
		return fmt.Sprintf("%v", c.Number)
	case CellText:
		return c.Text
	default:
		return "<vazio>"
	}
}
