package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/servfaz/servfaz-cli/internal/application/usecase"
	"github.com/servfaz/servfaz-cli/internal/shared/types"
	"github.com/servfaz/servfaz-cli/pkg/version"
)

// CLIApp representa a aplicação de linha de comando.
type CLIApp struct {
	rootCmd *cobra.Command
	useCase *usecase.CalculationUseCase
	version string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "servfaz",
		Short:   "Cliente de terminal para a API de cálculo jurídico ServFaz",
		Version: formattedVersion,
	}
	rootCmd.SetVersionTemplate(`{{printf "ServFaz CLI version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the calculation backend (default: SERVFAZ_API_URL or http://localhost:8000)")

	rootCmd.AddCommand(app.newCalculateCmd())
	rootCmd.AddCommand(app.newHistoryCmd())
	rootCmd.AddCommand(app.newShowCmd())
	rootCmd.AddCommand(app.newDeleteCmd())
	rootCmd.AddCommand(app.newStatusCmd())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetUseCase define o caso de uso de cálculo da aplicação.
func (app *CLIApp) SetUseCase(useCase *usecase.CalculationUseCase) {
	app.useCase = useCase
}

func (app *CLIApp) newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calcular",
		Short: "Submete os dados do processo e exibe as tabelas calculadas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			displayWelcomeBanner(app.version)
			go version.CheckLatestVersion(app.version)

			args, err := app.parseCommonArgs(cmd)
			if err != nil {
				return err
			}

			args.Municipio, _ = cmd.Flags().GetString("municipio")
			args.Ajuizamento, _ = cmd.Flags().GetString("ajuizamento")
			args.Citacao, _ = cmd.Flags().GetString("citacao")
			args.InicioCalculo, _ = cmd.Flags().GetString("inicio")
			args.FinalCalculo, _ = cmd.Flags().GetString("final")
			args.CorrecaoAte, _ = cmd.Flags().GetString("correcao-ate")
			args.HonorariosPercentual, _ = cmd.Flags().GetString("honorarios-percentual")
			args.HonorariosFixo, _ = cmd.Flags().GetFloat64("honorarios-fixo")
			args.DesagioPrincipal, _ = cmd.Flags().GetFloat64("desagio-principal")
			args.DesagioHonorarios, _ = cmd.Flags().GetFloat64("desagio-honorarios")

			return app.useCase.RunCalculation(context.Background(), args)
		},
	}

	cmd.Flags().StringP("municipio", "m", "", "Nome do município")
	cmd.Flags().String("ajuizamento", "", "Data de ajuizamento (DD/MM/AAAA)")
	cmd.Flags().String("citacao", "", "Data de citação (DD/MM/AAAA)")
	cmd.Flags().String("inicio", "", "Início do cálculo (DD/MM/AAAA)")
	cmd.Flags().String("final", "", "Final do cálculo (DD/MM/AAAA)")
	cmd.Flags().String("correcao-ate", "", "Correção até (DD/MM/AAAA); datas após 01/01/2025 aplicam SELIC mensal")
	cmd.Flags().String("honorarios-percentual", "", "Honorários s/ valor da condenação (ex: 10%)")
	cmd.Flags().Float64("honorarios-fixo", 0, "Honorários em valor fixo")
	cmd.Flags().Float64("desagio-principal", 0, "Deságio a aplicar sobre o principal (%)")
	cmd.Flags().Float64("desagio-honorarios", 0, "Deságio a aplicar em honorários (%)")
	addReportFlags(cmd)

	return cmd
}

func (app *CLIApp) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "historico",
		Short: "Lista os cálculos salvos no backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := app.parseCommonArgs(cmd)
			if err != nil {
				return err
			}
			args.Limit, _ = cmd.Flags().GetInt("limit")
			return app.useCase.RunHistory(context.Background(), args)
		},
	}
	cmd.Flags().IntP("limit", "l", 100, "Número máximo de cálculos a listar")
	return cmd
}

func (app *CLIApp) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ver <id>",
		Short: "Exibe um cálculo salvo, com exportação opcional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			args, err := app.parseCommonArgs(cmd)
			if err != nil {
				return err
			}
			return app.useCase.RunShow(context.Background(), cmdArgs[0], args)
		},
	}
	addReportFlags(cmd)
	return cmd
}

func (app *CLIApp) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excluir <id>",
		Short: "Exclui um cálculo do histórico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			args, err := app.parseCommonArgs(cmd)
			if err != nil {
				return err
			}
			args.Yes, _ = cmd.Flags().GetBool("sim")
			return app.useCase.RunDelete(context.Background(), cmdArgs[0], args)
		},
	}
	cmd.Flags().BoolP("sim", "s", false, "Exclui sem pedir confirmação")
	return cmd
}

func (app *CLIApp) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verifica se o backend de cálculo está acessível",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := app.parseCommonArgs(cmd)
			if err != nil {
				return err
			}
			return app.useCase.RunStatus(context.Background(), args)
		},
	}
}

// parseCommonArgs resolve as flags persistentes e as flags de exportação
// compartilhadas entre comandos.
func (app *CLIApp) parseCommonArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	apiURL, _ := cmd.Flags().GetString("api-url")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		APIURL:     apiURL,
	}

	if cmd.Flags().Lookup("report-name") != nil {
		args.ReportName, _ = cmd.Flags().GetString("report-name")
		args.ReportType, _ = cmd.Flags().GetStringSlice("report-type")
		dir, _ := cmd.Flags().GetString("dir")

		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			dir = cwd
		} else {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			dir = absDir
		}
		args.Dir = dir
	}

	return args, nil
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", []string{"pdf"}, "Specify report types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
}
