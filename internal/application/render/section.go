package render

import (
	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

// noDataRow é o texto da linha exibida quando um bloco não tem linhas de
// dados.
const noDataRow = "Sem dados"

// settlementCaption é a legenda adicionada aos blocos de acordo.
const settlementCaption = "Valor Final Proposto para Acordo"

// Section projeta uma lista de blocos em uma seção renderizada. Lista vazia
// ou ausente não produz seção alguma (o chamador não deve exibir um
// cabeçalho de seção vazio). A ordem dos blocos é preservada: ela reflete o
// agrupamento semântico do backend.
func Section(blocks []entity.TableBlock, title string) *entity.ReportSection {
	if len(blocks) == 0 {
		return nil
	}

	section := &entity.ReportSection{
		Title:  title,
		Blocks: make([]entity.ReportBlock, 0, len(blocks)),
	}
	for _, block := range blocks {
		section.Blocks = append(section.Blocks, renderBlock(block))
	}
	return section
}

func renderBlock(block entity.TableBlock) entity.ReportBlock {
	rb := entity.ReportBlock{
		Titulo:     block.Titulo,
		Settlement: IsSettlementBlock(block.Titulo),
		Header:     append([]string(nil), block.Header...),
	}
	if rb.Settlement {
		rb.Caption = settlementCaption
	}

	if len(block.Rows) > 0 {
		rb.Rows = make([][]string, 0, len(block.Rows))
		for _, row := range block.Rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, FormatValue(cell))
			}
			rb.Rows = append(rb.Rows, cells)
		}
	} else {
		// Bloco sem linhas ainda mostra uma linha "Sem dados" ocupando a
		// largura do cabeçalho, nunca uma tabela oca.
		placeholder := make([]string, len(block.Header))
		for i := range placeholder {
			placeholder[i] = ""
		}
		if len(placeholder) > 0 {
			placeholder[0] = noDataRow
		} else {
			placeholder = []string{noDataRow}
		}
		rb.Rows = [][]string{placeholder}
	}

	if block.Total != nil {
		total := make([]string, 0, len(block.Header))
		for _, cell := range block.Total {
			total = append(total, FormatValue(cell))
		}
		// Completa com o marcador até a largura do cabeçalho. Um total mais
		// longo que o cabeçalho é erro do produtor; as células excedentes são
		// mantidas em vez de truncadas.
		for len(total) < len(block.Header) {
			total = append(total, EmptyPlaceholder)
		}
		rb.Total = total
	}

	return rb
}
