package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSettlementBlock(t *testing.T) {
	tests := []struct {
		name   string
		titulo string
		want   bool
	}{
		{"marcador exato", "Total do Valor Proposto para Acordo", true},
		{"maiúsculas", "TOTAL DO VALOR PROPOSTO PARA ACORDO", true},
		{"embutido em título maior", "Resumo — Total do Valor Proposto para Acordo (com deságio)", true},
		{"título vazio", "", false},
		{"título sem relação", "Honorários Advocatícios", false},
		{"marcador parcial", "Valor Proposto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSettlementBlock(tt.titulo))
		})
	}
}
