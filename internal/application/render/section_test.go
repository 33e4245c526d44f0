package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

func TestSectionEmptyInput(t *testing.T) {
	assert.Nil(t, Section(nil, "Resultados"))
	assert.Nil(t, Section([]entity.TableBlock{}, "Resultados"))
}

func TestSectionTotalPadding(t *testing.T) {
	block := entity.TableBlock{
		Titulo: "Condenação",
		Header: []string{"Item", "Principal", "Juros", "Total"},
		Rows: [][]entity.CellValue{
			{entity.TextCell("Parcela 1"), entity.NumberCell(100), entity.NumberCell(10), entity.NumberCell(110)},
		},
		Total: []entity.CellValue{entity.TextCell("Total"), entity.NumberCell(110)},
	}

	section := Section([]entity.TableBlock{block}, "Base")
	require.NotNil(t, section)
	require.Len(t, section.Blocks, 1)

	total := section.Blocks[0].Total
	require.Len(t, total, 4)
	assert.Equal(t, "Total", total[0])
	assert.Equal(t, "110,00", total[1])
	assert.Equal(t, "-", total[2])
	assert.Equal(t, "-", total[3])
}

func TestSectionTotalLongerThanHeader(t *testing.T) {
	// Erro do produtor: total mais largo que o cabeçalho. As células
	// excedentes são mantidas, nunca truncadas.
	block := entity.TableBlock{
		Titulo: "Bloco",
		Header: []string{"A", "B"},
		Rows:   [][]entity.CellValue{{entity.NumberCell(1), entity.NumberCell(2)}},
		Total:  []entity.CellValue{entity.TextCell("x"), entity.NumberCell(1), entity.NumberCell(2)},
	}

	section := Section([]entity.TableBlock{block}, "Base")
	require.NotNil(t, section)
	assert.Len(t, section.Blocks[0].Total, 3)
}

func TestSectionNoRowsPlaceholder(t *testing.T) {
	block := entity.TableBlock{
		Titulo: "Sem movimento",
		Header: []string{"Item", "Valor", "Juros"},
		Rows:   nil,
	}

	section := Section([]entity.TableBlock{block}, "Base")
	require.NotNil(t, section)

	rows := section.Blocks[0].Rows
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 3)
	assert.Equal(t, "Sem dados", rows[0][0])
	assert.Nil(t, section.Blocks[0].Total)
}

func TestSectionPreservesBlockOrder(t *testing.T) {
	blocks := []entity.TableBlock{
		{Titulo: "Primeiro", Header: []string{"A"}},
		{Titulo: "Segundo", Header: []string{"A"}},
		{Titulo: "Terceiro", Header: []string{"A"}},
	}

	section := Section(blocks, "Base")
	require.NotNil(t, section)
	require.Len(t, section.Blocks, 3)
	assert.Equal(t, "Primeiro", section.Blocks[0].Titulo)
	assert.Equal(t, "Segundo", section.Blocks[1].Titulo)
	assert.Equal(t, "Terceiro", section.Blocks[2].Titulo)
}

func TestSectionSettlementCaption(t *testing.T) {
	blocks := []entity.TableBlock{
		{Titulo: "Honorários", Header: []string{"Item"}},
		{Titulo: "Total do Valor Proposto para Acordo", Header: []string{"Item"}},
	}

	section := Section(blocks, "Base")
	require.NotNil(t, section)

	assert.False(t, section.Blocks[0].Settlement)
	assert.Empty(t, section.Blocks[0].Caption)
	assert.True(t, section.Blocks[1].Settlement)
	assert.Equal(t, "Valor Final Proposto para Acordo", section.Blocks[1].Caption)
}

func TestSectionIsPureProjection(t *testing.T) {
	blocks := []entity.TableBlock{
		{
			Titulo: "Bloco",
			Header: []string{"Item", "Valor"},
			Rows:   [][]entity.CellValue{{entity.TextCell("Principal"), entity.NumberCell(1000)}},
			Total:  []entity.CellValue{entity.TextCell("Total")},
		},
	}

	first := Section(blocks, "Base")
	second := Section(blocks, "Base")
	assert.Equal(t, first, second)
}
