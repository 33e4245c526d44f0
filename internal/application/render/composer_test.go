package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

func TestComposeDocumentNilPayload(t *testing.T) {
	assert.Nil(t, ComposeDocument(nil))
}

func TestComposeDocumentMissingBaseResults(t *testing.T) {
	payload := &entity.ResultPayload{
		ID:        "abc",
		CreatedAt: "2025-01-01T00:00:00Z",
	}
	assert.Nil(t, ComposeDocument(payload))
}

func TestComposeDocumentBaseOnly(t *testing.T) {
	payload := &entity.ResultPayload{
		ID:        "abc",
		CreatedAt: "2025-03-10T14:30:00Z",
		ResultsBase: []entity.TableBlock{
			{Titulo: "Condenação", Header: []string{"Item", "Valor"}},
		},
	}

	doc := ComposeDocument(payload)
	require.NotNil(t, doc)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Resultados Base (01/01/2025)", doc.Sections[0].Title)
	assert.False(t, doc.Sections[0].Corrected)
	assert.Equal(t, "10/03/2025 14:30", doc.CreatedAt)
}

func TestComposeDocumentWithCorrection(t *testing.T) {
	payload := &entity.ResultPayload{
		ID:          "abc",
		CreatedAt:   "2025-06-01T08:00:00Z",
		CorrecaoAte: "30/06/2025",
		ResultsBase: []entity.TableBlock{
			{Titulo: "Base", Header: []string{"Item"}},
		},
		ResultsAtualizados: []entity.TableBlock{
			{Titulo: "Atualizado", Header: []string{"Item"}},
		},
	}

	doc := ComposeDocument(payload)
	require.NotNil(t, doc)
	require.Len(t, doc.Sections, 2)
	assert.True(t, doc.Sections[1].Corrected)
	assert.Equal(t, "Resultados Atualizados com SELIC (até 30/06/2025)", doc.Sections[1].Title)
}

func TestComposeDocumentEmptyCorrectionOmitted(t *testing.T) {
	// Lista atualizada presente porém vazia: sem seção extra e sem divisor.
	payload := &entity.ResultPayload{
		ID:                 "abc",
		CreatedAt:          "2025-06-01T08:00:00Z",
		ResultsBase:        []entity.TableBlock{{Titulo: "Base", Header: []string{"Item"}}},
		ResultsAtualizados: []entity.TableBlock{},
	}

	doc := ComposeDocument(payload)
	require.NotNil(t, doc)
	assert.Len(t, doc.Sections, 1)
}

func TestComposeDocumentEndToEnd(t *testing.T) {
	payload := &entity.ResultPayload{
		ID:        "abc",
		CreatedAt: "2025-01-01T00:00:00Z",
		ResultsBase: []entity.TableBlock{
			{
				Titulo: "Total do Valor Proposto para Acordo",
				Header: []string{"Item", "Valor"},
				Rows: [][]entity.CellValue{
					{entity.TextCell("Principal"), entity.NumberCell(1000)},
				},
				Total: []entity.CellValue{entity.TextCell("Total"), entity.NumberCell(1000)},
			},
		},
	}

	doc := ComposeDocument(payload)
	require.NotNil(t, doc)
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Blocks, 1)

	block := doc.Sections[0].Blocks[0]
	assert.True(t, block.Settlement)
	require.Len(t, block.Rows, 1)
	assert.Equal(t, []string{"Principal", "1.000,00"}, block.Rows[0])
	assert.Equal(t, []string{"Total", "1.000,00"}, block.Total)
}

func TestFormatTimestampFallback(t *testing.T) {
	// created_at do SQLite vem sem timezone; formatos desconhecidos passam
	// inalterados.
	assert.Equal(t, "05/02/2025 09:15", FormatTimestamp("2025-02-05T09:15:33"))
	assert.Equal(t, "data inválida", FormatTimestamp("data inválida"))
}
