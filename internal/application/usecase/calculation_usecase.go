package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/servfaz/servfaz-cli/internal/application/render"
	"github.com/servfaz/servfaz-cli/internal/domain/entity"
	"github.com/servfaz/servfaz-cli/internal/domain/repository"
	"github.com/servfaz/servfaz-cli/internal/shared/types"
)

// CalculationUseCase orquestra o envio de cálculos, a exibição dos
// resultados e o gerenciamento do histórico.
type CalculationUseCase struct {
	apiRepo    repository.CalcAPIRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewCalculationUseCase cria um novo caso de uso de cálculo.
func NewCalculationUseCase(
	apiRepo repository.CalcAPIRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *CalculationUseCase {
	return &CalculationUseCase{
		apiRepo:    apiRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunCalculation submete os dados do processo e exibe o documento de
// resultado. A requisição é única e síncrona: o spinner bloqueia reenvios
// enquanto o cálculo está em andamento.
func (uc *CalculationUseCase) RunCalculation(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.prepareArgs(args); err != nil {
		return err
	}

	input, err := buildInput(args)
	if err != nil {
		uc.console.LogError("%s", err)
		return err
	}

	status := uc.console.Status("Enviando cálculo para o backend...")
	payload, err := uc.apiRepo.Calculate(ctx, input)
	status.Stop()
	if err != nil {
		uc.console.LogError("%s", err)
		return err
	}

	doc := render.ComposeDocument(payload)
	if doc == nil {
		uc.console.LogError("%s", types.ErrEmptyResult)
		return types.ErrEmptyResult
	}

	uc.displayDocument(doc)
	uc.exportDocument(doc, args)
	return nil
}

// prepareArgs mescla o arquivo de configuração (quando informado) nos
// argumentos e redireciona o cliente da API se necessário. Flags explícitas
// têm precedência sobre o arquivo.
func (uc *CalculationUseCase) prepareArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			uc.console.LogError("%s", err)
			return err
		}
		mergeConfig(args, cfg)
	}

	if args.APIURL != "" {
		uc.apiRepo.SetBaseURL(args.APIURL)
	}
	return nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.APIURL == "" {
		args.APIURL = cfg.APIURL
	}
	if args.Municipio == "" {
		args.Municipio = cfg.Municipio
	}
	if args.Ajuizamento == "" {
		args.Ajuizamento = cfg.Ajuizamento
	}
	if args.Citacao == "" {
		args.Citacao = cfg.Citacao
	}
	if args.InicioCalculo == "" {
		args.InicioCalculo = cfg.InicioCalculo
	}
	if args.FinalCalculo == "" {
		args.FinalCalculo = cfg.FinalCalculo
	}
	if args.CorrecaoAte == "" {
		args.CorrecaoAte = cfg.CorrecaoAte
	}
	if args.HonorariosPercentual == "" {
		args.HonorariosPercentual = cfg.HonorariosPercentual
	}
	if args.HonorariosFixo == 0 {
		args.HonorariosFixo = cfg.HonorariosFixo
	}
	if args.DesagioPrincipal == 0 {
		args.DesagioPrincipal = cfg.DesagioPrincipal
	}
	if args.DesagioHonorarios == 0 {
		args.DesagioHonorarios = cfg.DesagioHonorarios
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
}

// buildInput monta e valida o formulário de cálculo a partir dos argumentos.
func buildInput(args *types.CLIArgs) (entity.CalculateInput, error) {
	input := entity.CalculateInput{
		Municipio:            args.Municipio,
		Ajuizamento:          args.Ajuizamento,
		Citacao:              args.Citacao,
		InicioCalculo:        args.InicioCalculo,
		FinalCalculo:         args.FinalCalculo,
		HonorariosPercentual: args.HonorariosPercentual,
		HonorariosFixo:       args.HonorariosFixo,
		DesagioPrincipal:     args.DesagioPrincipal,
		DesagioHonorarios:    args.DesagioHonorarios,
		CorrecaoAte:          args.CorrecaoAte,
	}

	required := []struct {
		name  string
		value string
	}{
		{"município", input.Municipio},
		{"ajuizamento", input.Ajuizamento},
		{"citação", input.Citacao},
		{"início do cálculo", input.InicioCalculo},
		{"final do cálculo", input.FinalCalculo},
		{"correção até", input.CorrecaoAte},
		{"honorários s/ valor da condenação", input.HonorariosPercentual},
	}
	for _, field := range required {
		if field.value == "" {
			return entity.CalculateInput{}, fmt.Errorf("%w: %s", types.ErrMissingField, field.name)
		}
	}

	dates := []struct {
		name  string
		value string
	}{
		{"ajuizamento", input.Ajuizamento},
		{"citação", input.Citacao},
		{"início do cálculo", input.InicioCalculo},
		{"final do cálculo", input.FinalCalculo},
		{"correção até", input.CorrecaoAte},
	}
	for _, field := range dates {
		if _, err := time.Parse("02/01/2006", field.value); err != nil {
			return entity.CalculateInput{}, fmt.Errorf("%w: %s (%s)", types.ErrInvalidDate, field.name, field.value)
		}
	}

	return input, nil
}

// displayDocument imprime o documento composto: cabeçalho identificador,
// seção base e, quando presente, a seção atualizada precedida do divisor.
func (uc *CalculationUseCase) displayDocument(doc *entity.ReportDocument) {
	uc.console.Println()
	uc.console.LogInfo("ID do Cálculo: %s", doc.ID)
	uc.console.LogInfo("Data: %s", doc.CreatedAt)
	if doc.CorrecaoAte != "" {
		uc.console.LogInfo("Correção até: %s", doc.CorrecaoAte)
	}

	for _, section := range doc.Sections {
		if section.Corrected {
			uc.console.Divider()
		}
		uc.console.SectionHeader(section.Title, section.Corrected)

		for _, block := range section.Blocks {
			uc.displayBlock(block)
		}
	}
}

func (uc *CalculationUseCase) displayBlock(block entity.ReportBlock) {
	table := uc.console.CreateTable()
	for _, col := range block.Header {
		table.AddColumn(col)
	}

	for _, row := range block.Rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		table.AddRow(cells...)
	}

	if block.Total != nil {
		style := pterm.NewStyle(pterm.Bold)
		if block.Settlement {
			style = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
		}
		cells := make([]interface{}, len(block.Total))
		for i, cell := range block.Total {
			cells[i] = style.Sprint(cell)
		}
		table.AddRow(cells...)
	}

	rendered := table.Render()

	uc.console.Println()
	if block.Settlement {
		title := fmt.Sprintf("%s — %s", block.Titulo, block.Caption)
		uc.console.Println(uc.console.BoxPanel(title, rendered))
	} else {
		uc.console.Println(pterm.Bold.Sprint(block.Titulo))
		uc.console.Print(rendered)
		uc.console.Println()
	}
}

// exportDocument grava os relatórios solicitados via --report-name/--report-type.
func (uc *CalculationUseCase) exportDocument(doc *entity.ReportDocument, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(doc, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar CSV: %s", err)
			} else {
				uc.console.LogSuccess("Relatório CSV exportado: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(doc, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar JSON: %s", err)
			} else {
				uc.console.LogSuccess("Relatório JSON exportado: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(doc, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar PDF: %s", err)
			} else {
				uc.console.LogSuccess("Relatório PDF exportado: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Tipo de relatório desconhecido: %s", reportType)
		}
	}
}
