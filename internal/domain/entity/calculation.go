package entity

// CalculateInput representa os dados do processo enviados ao endpoint de
// cálculo. As chaves JSON (acentuadas) seguem o schema de entrada do backend.
type CalculateInput struct {
	Municipio            string  `json:"município" yaml:"municipio" toml:"municipio"`
	Ajuizamento          string  `json:"ajuizamento" yaml:"ajuizamento" toml:"ajuizamento"`
	Citacao              string  `json:"citação" yaml:"citacao" toml:"citacao"`
	InicioCalculo        string  `json:"início_cálculo" yaml:"inicio_calculo" toml:"inicio_calculo"`
	FinalCalculo         string  `json:"final_cálculo" yaml:"final_calculo" toml:"final_calculo"`
	HonorariosPercentual string  `json:"honorários_s_valor_da_condenação" yaml:"honorarios_percentual" toml:"honorarios_percentual"`
	HonorariosFixo       float64 `json:"honorários_em_valor_fixo" yaml:"honorarios_fixo" toml:"honorarios_fixo"`
	DesagioPrincipal     float64 `json:"deságio_a_aplicar_sobre_o_principal" yaml:"desagio_principal" toml:"desagio_principal"`
	DesagioHonorarios    float64 `json:"deságio_em_a_aplicar_em_honorários" yaml:"desagio_honorarios" toml:"desagio_honorarios"`
	CorrecaoAte          string  `json:"correção_até" yaml:"correcao_ate" toml:"correcao_ate"`
}

// TableBlock é uma sub-tabela titulada dentro de uma seção de resultados:
// cabeçalho, zero ou mais linhas de dados e uma linha de total opcional.
// Total nulo significa "sem linha de total"; um total mais curto que o
// cabeçalho é completado pela camada de renderização.
type TableBlock struct {
	Titulo string        `json:"titulo"`
	Header []string      `json:"header"`
	Rows   [][]CellValue `json:"rows"`
	Total  []CellValue   `json:"total,omitempty"`
}

// ResultPayload é a resposta do endpoint de cálculo. ResultsAtualizados só
// vem preenchido quando a data de correção exigiu atualização SELIC, caso em
// que CorrecaoAte rotula a seção atualizada.
type ResultPayload struct {
	ID                 string       `json:"id"`
	CreatedAt          string       `json:"created_at"`
	CorrecaoAte        string       `json:"correcao_ate,omitempty"`
	ResultsBase        []TableBlock `json:"results_base"`
	ResultsAtualizados []TableBlock `json:"results_atualizados,omitempty"`
}

// CalculationSummary é a projeção resumida usada na listagem do histórico
// (sem as tabelas aninhadas).
type CalculationSummary struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	Municipio   string `json:"município"`
	CorrecaoAte string `json:"correção_até"`
}

// ResultOutput é o bloco output_data persistido junto com cada cálculo.
type ResultOutput struct {
	ResultsBase        []TableBlock `json:"results_base"`
	ResultsAtualizados []TableBlock `json:"results_atualizados,omitempty"`
	CorrecaoAte        string       `json:"correcao_ate,omitempty"`
}

// CalculationDetail é um item completo do histórico: entrada original mais
// saída calculada.
type CalculationDetail struct {
	ID         string         `json:"id"`
	CreatedAt  string         `json:"created_at"`
	InputData  CalculateInput `json:"input_data"`
	OutputData ResultOutput   `json:"output_data"`
}

// Payload converte um item do histórico no mesmo formato retornado pelo
// endpoint de cálculo, para reaproveitar a composição do documento.
func (d *CalculationDetail) Payload() *ResultPayload {
	return &ResultPayload{
		ID:                 d.ID,
		CreatedAt:          d.CreatedAt,
		CorrecaoAte:        d.OutputData.CorrecaoAte,
		ResultsBase:        d.OutputData.ResultsBase,
		ResultsAtualizados: d.OutputData.ResultsAtualizados,
	}
}

// HealthStatus é a resposta do endpoint raiz do backend.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
