package render

import (
	"strconv"
	"strings"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

// EmptyPlaceholder é o marcador exibido para células sem valor.
const EmptyPlaceholder = "-"

// FormatValue converte uma célula em sua string de exibição. Células vazias
// viram o marcador "-"; números recebem formato monetário pt-BR (milhares
// com ponto, duas casas decimais com vírgula); texto passa inalterado.
// A verificação de vazio vem antes do ramo numérico: 0 é um número válido.
func FormatValue(v entity.CellValue) string {
	switch v.Kind {
	case entity.CellEmpty:
		return EmptyPlaceholder
	case entity.CellNumber:
		return formatNumber(v.Number)
	default:
		return v.Text
	}
}

// formatNumber formata um float no padrão pt-BR com exatamente duas casas
// decimais. O arredondamento é o de strconv.FormatFloat (half-to-even),
// determinístico entre execuções e plataformas.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}
