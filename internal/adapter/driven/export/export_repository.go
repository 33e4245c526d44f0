package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
	"github.com/servfaz/servfaz-cli/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava o documento em CSV achatado: uma linha por linha de
// tabela, com colunas de contexto (seção, bloco, tipo de linha) seguidas das
// células. Linhas de blocos diferentes podem ter larguras diferentes.
func (r *ExportRepositoryImpl) ExportToCSV(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"ID do Cálculo", doc.ID})
	writer.Write([]string{"Data", doc.CreatedAt})
	if doc.CorrecaoAte != "" {
		writer.Write([]string{"Correção até", doc.CorrecaoAte})
	}
	writer.Write(nil)

	for _, section := range doc.Sections {
		for _, block := range section.Blocks {
			record := append([]string{section.Title, block.Titulo, "header"}, block.Header...)
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
			for _, row := range block.Rows {
				if err := writer.Write(append([]string{section.Title, block.Titulo, "linha"}, row...)); err != nil {
					return "", fmt.Errorf("error writing CSV record: %w", err)
				}
			}
			if block.Total != nil {
				if err := writer.Write(append([]string{section.Title, block.Titulo, "total"}, block.Total...)); err != nil {
					return "", fmt.Errorf("error writing CSV record: %w", err)
				}
			}
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o documento composto como JSON indentado.
func (r *ExportRepositoryImpl) ExportToJSON(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava o documento como relatório PDF: cabeçalho identificador,
// seções com título em barra colorida e uma tabela por bloco. Blocos de
// acordo recebem preenchimento esverdeado no título.
func (r *ExportRepositoryImpl) ExportToPDF(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	settlementFill := [3]int{209, 250, 229}
	totalFill := [3]int{240, 240, 240}

	pageWidth := 190.0

	pdf.AddPage()

	// Cabeçalho identificador
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Cálculo %s", doc.ID)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(totalFill[0], totalFill[1], totalFill[2])
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Data: %s", doc.CreatedAt)), "", 1, "L", true, 0, "")
	if doc.CorrecaoAte != "" {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Correção até: %s", doc.CorrecaoAte)), "", 1, "L", true, 0, "")
	}
	pdf.Ln(8)

	for _, section := range doc.Sections {
		if section.Corrected {
			// Divisor visual antes da seção atualizada
			pdf.SetDrawColor(217, 119, 6)
			pdf.SetLineWidth(1.2)
			pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pageWidth, pdf.GetY())
			pdf.SetLineWidth(0.2)
			pdf.Ln(6)
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 8, tr(section.Title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+pageWidth, pdf.GetY())
		pdf.Ln(4)

		for _, block := range section.Blocks {
			drawBlock(pdf, tr, block, pageWidth, settlementFill, totalFill, bodyTextColor)
		}
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Gerado por ServFaz CLI | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// drawBlock desenha a tabela de um bloco. A largura das colunas é dividida
// igualmente; linhas mais largas que o cabeçalho (erro do produtor) usam a
// própria largura.
func drawBlock(pdf *gofpdf.Fpdf, tr func(string) string, block entity.ReportBlock, pageWidth float64, settlementFill, totalFill, bodyTextColor [3]int) {
	pdf.SetFont("Arial", "B", 10)
	if block.Settlement {
		pdf.SetFillColor(settlementFill[0], settlementFill[1], settlementFill[2])
	} else {
		pdf.SetFillColor(totalFill[0], totalFill[1], totalFill[2])
	}
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(pageWidth, 8, tr("  "+block.Titulo), "1", 1, "L", true, 0, "")
	if block.Caption != "" {
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(pageWidth, 6, tr("  "+block.Caption), "LR", 1, "L", true, 0, "")
	}

	columns := len(block.Header)
	if columns == 0 {
		columns = 1
	}
	colWidth := pageWidth / float64(columns)

	pdf.SetFont("Arial", "B", 9)
	for _, cell := range block.Header {
		pdf.CellFormat(colWidth, 7, tr(cell), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range block.Rows {
		width := colWidth
		if len(row) > columns {
			width = pageWidth / float64(len(row))
		}
		for _, cell := range row {
			pdf.CellFormat(width, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if block.Total != nil {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(totalFill[0], totalFill[1], totalFill[2])
		width := colWidth
		if len(block.Total) > columns {
			width = pageWidth / float64(len(block.Total))
		}
		for _, cell := range block.Total {
			pdf.CellFormat(width, 7, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que
// o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
