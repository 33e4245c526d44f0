package main

import (
	"fmt"
	"os"

	"github.com/servfaz/servfaz-cli/internal/adapter/driven/api"
	"github.com/servfaz/servfaz-cli/internal/adapter/driven/config"
	"github.com/servfaz/servfaz-cli/internal/adapter/driven/export"
	"github.com/servfaz/servfaz-cli/internal/adapter/driving/cli"
	"github.com/servfaz/servfaz-cli/internal/application/usecase"
	"github.com/servfaz/servfaz-cli/pkg/console"
	"github.com/servfaz/servfaz-cli/pkg/version"
)

const defaultAPIURL = "http://localhost:8000"

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	apiRepo := api.NewAPIRepository(resolveAPIURL(), api.DefaultTimeout)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	calcUseCase := usecase.NewCalculationUseCase(
		apiRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetUseCase(calcUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveAPIURL define o endereço inicial do backend; a flag --api-url e o
// arquivo de configuração podem sobrescrevê-lo depois.
func resolveAPIURL() string {
	if url := os.Getenv("SERVFAZ_API_URL"); url != "" {
		return url
	}
	return defaultAPIURL
}
