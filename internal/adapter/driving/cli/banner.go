package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/servfaz/servfaz-cli/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____                  _____
        / ___|  ___ _ ____   _|  ___|_ _ ____
        \___ \ / _ \ '__\ \ / / |_ / _` + "`" + ` |_  /
         ___) |  __/ |   \ V /|  _| (_| |/ /
        |____/ \___|_|    \_/ |_|  \__,_/___|
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("ServFaz CLI — cálculos jurídicos (v%s)", formattedVersion)))
}
