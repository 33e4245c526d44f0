package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

func sampleDocument() *entity.ReportDocument {
	return &entity.ReportDocument{
		ID:          "abc-123",
		CreatedAt:   "01/06/2025 10:00",
		CorrecaoAte: "30/06/2025",
		Sections: []entity.ReportSection{
			{
				Title: "Resultados Base (01/01/2025)",
				Blocks: []entity.ReportBlock{
					{
						Titulo:     "Total do Valor Proposto para Acordo",
						Settlement: true,
						Caption:    "Valor Final Proposto para Acordo",
						Header:     []string{"Item", "Valor"},
						Rows:       [][]string{{"Principal", "1.000,00"}},
						Total:      []string{"Total", "1.000,00"},
					},
				},
			},
		},
	}
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToJSON(sampleDocument(), "relatorio", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ReportDocument
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abc-123", decoded.ID)
	require.Len(t, decoded.Sections, 1)
	assert.True(t, decoded.Sections[0].Blocks[0].Settlement)
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToCSV(sampleDocument(), "relatorio", dir)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// Metadados + separador + header/linha/total do bloco
	require.GreaterOrEqual(t, len(records), 6)
	assert.Equal(t, []string{"ID do Cálculo", "abc-123"}, records[0])

	last := records[len(records)-1]
	assert.Equal(t, "total", last[2])
	assert.Equal(t, "1.000,00", last[4])
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToPDF(sampleDocument(), "relatorio", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateFilenameCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/relatorios"

	path, err := generateFilename("saida", dir, "csv")
	require.NoError(t, err)
	assert.Contains(t, path, "saida_")

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
