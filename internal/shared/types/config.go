package types

// Config representa a configuração da aplicação carregável de arquivo
// TOML, YAML ou JSON. Valores do arquivo preenchem apenas flags não
// informadas na linha de comando.
type Config struct {
	APIURL string `json:"api_url" yaml:"api_url" toml:"api_url"`

	Municipio            string  `json:"municipio" yaml:"municipio" toml:"municipio"`
	Ajuizamento          string  `json:"ajuizamento" yaml:"ajuizamento" toml:"ajuizamento"`
	Citacao              string  `json:"citacao" yaml:"citacao" toml:"citacao"`
	InicioCalculo        string  `json:"inicio_calculo" yaml:"inicio_calculo" toml:"inicio_calculo"`
	FinalCalculo         string  `json:"final_calculo" yaml:"final_calculo" toml:"final_calculo"`
	CorrecaoAte          string  `json:"correcao_ate" yaml:"correcao_ate" toml:"correcao_ate"`
	HonorariosPercentual string  `json:"honorarios_percentual" yaml:"honorarios_percentual" toml:"honorarios_percentual"`
	HonorariosFixo       float64 `json:"honorarios_fixo" yaml:"honorarios_fixo" toml:"honorarios_fixo"`
	DesagioPrincipal     float64 `json:"desagio_principal" yaml:"desagio_principal" toml:"desagio_principal"`
	DesagioHonorarios    float64 `json:"desagio_honorarios" yaml:"desagio_honorarios" toml:"desagio_honorarios"`

	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
