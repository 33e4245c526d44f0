package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

func TestFormatValueEmpty(t *testing.T) {
	assert.Equal(t, "-", FormatValue(entity.EmptyCell()))
	assert.Equal(t, "-", FormatValue(entity.TextCell("")))

	// null JSON também degrada para o marcador
	var cell entity.CellValue
	assert.NoError(t, cell.UnmarshalJSON([]byte("null")))
	assert.Equal(t, "-", FormatValue(cell))
}

func TestFormatValueZeroIsNotEmpty(t *testing.T) {
	// 0 é um número válido: formata como valor, não como célula vazia.
	assert.Equal(t, "0,00", FormatValue(entity.NumberCell(0)))
}

func TestFormatValueNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"inteiro pequeno", 7, "7,00"},
		{"com fração", 1234.5, "1.234,50"},
		{"mil exato", 1000, "1.000,00"},
		{"milhões", 1234567.891, "1.234.567,89"},
		{"negativo", -98765.4, "-98.765,40"},
		{"centavos", 0.05, "0,05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(entity.NumberCell(tt.value)))
		})
	}
}

func TestFormatValueTextPassthrough(t *testing.T) {
	assert.Equal(t, "Honorários", FormatValue(entity.TextCell("Honorários")))
	assert.Equal(t, "10%", FormatValue(entity.TextCell("10%")))
}

func TestCellValueUnmarshal(t *testing.T) {
	var cell entity.CellValue

	assert.NoError(t, cell.UnmarshalJSON([]byte("1500.75")))
	assert.Equal(t, entity.CellNumber, cell.Kind)
	assert.Equal(t, 1500.75, cell.Number)

	assert.NoError(t, cell.UnmarshalJSON([]byte(`"Principal"`)))
	assert.Equal(t, entity.CellText, cell.Kind)

	// string vazia conta como célula sem valor
	assert.NoError(t, cell.UnmarshalJSON([]byte(`""`)))
	assert.Equal(t, entity.CellEmpty, cell.Kind)
}
