package render

import (
	"fmt"
	"time"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

// baseSectionTitle rotula a seção de resultados fixos da planilha, calculados
// na data de referência.
const baseSectionTitle = "Resultados Base (01/01/2025)"

// ComposeDocument monta o documento de exibição a partir do payload da API.
// Payload ausente ou sem results_base não produz documento: esse é o único
// guarda de topo, e o chamador não deve tentar renderização parcial. Demais
// anomalias de forma degradam para omissão da parte afetada.
func ComposeDocument(payload *entity.ResultPayload) *entity.ReportDocument {
	if payload == nil || payload.ResultsBase == nil {
		return nil
	}

	doc := &entity.ReportDocument{
		ID:          payload.ID,
		CreatedAt:   FormatTimestamp(payload.CreatedAt),
		CorrecaoAte: payload.CorrecaoAte,
	}

	if section := Section(payload.ResultsBase, baseSectionTitle); section != nil {
		doc.Sections = append(doc.Sections, *section)
	}

	// A seção atualizada só existe quando o backend aplicou SELIC; lista
	// presente porém vazia é tratada como ausente, sem divisor.
	if len(payload.ResultsAtualizados) > 0 {
		title := fmt.Sprintf("Resultados Atualizados com SELIC (até %s)", payload.CorrecaoAte)
		if section := Section(payload.ResultsAtualizados, title); section != nil {
			section.Corrected = true
			doc.Sections = append(doc.Sections, *section)
		}
	}

	return doc
}

// FormatTimestamp converte o created_at do backend (ISO 8601) para o formato
// de exibição dd/mm/aaaa hh:mm. Valores não reconhecidos passam inalterados.
func FormatTimestamp(value string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Format("02/01/2006 15:04")
		}
	}
	return value
}
