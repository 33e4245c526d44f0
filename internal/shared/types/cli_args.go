package types

// CLIArgs representa os argumentos de linha de comando já resolvidos.
type CLIArgs struct {
	ConfigFile string
	APIURL     string

	// Campos do formulário de cálculo
	Municipio            string
	Ajuizamento          string
	Citacao              string
	InicioCalculo        string
	FinalCalculo         string
	CorrecaoAte          string
	HonorariosPercentual string
	HonorariosFixo       float64
	DesagioPrincipal     float64
	DesagioHonorarios    float64

	// Exportação de relatórios
	ReportName string
	ReportType []string
	Dir        string

	// Histórico
	Limit int
	Yes   bool
}
