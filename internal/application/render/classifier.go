package render

import "strings"

// settlementMarker identifica o bloco de total do acordo proposto. O marcador
// pode aparecer em qualquer posição de um título mais longo.
const settlementMarker = "TOTAL DO VALOR PROPOSTO PARA ACORDO"

// IsSettlementBlock informa se o título marca o bloco do valor final proposto
// para acordo. Comparação por contenção, insensível a maiúsculas; título
// vazio nunca classifica.
func IsSettlementBlock(titulo string) bool {
	if titulo == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(titulo), settlementMarker)
}
