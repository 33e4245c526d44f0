package repository

import (
	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

// ExportRepository grava um documento composto em arquivo de relatório.
type ExportRepository interface {
	ExportToCSV(doc *entity.ReportDocument, filename string, outputDir string) (string, error)
	ExportToJSON(doc *entity.ReportDocument, filename string, outputDir string) (string, error)
	ExportToPDF(doc *entity.ReportDocument, filename string, outputDir string) (string, error)
}
