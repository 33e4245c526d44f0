package entity

// ReportBlock é a projeção de exibição de um TableBlock: todas as células já
// formatadas como string, com a marcação de bloco de acordo calculada.
type ReportBlock struct {
	Titulo     string     `json:"titulo"`
	Settlement bool       `json:"acordo,omitempty"`
	Caption    string     `json:"legenda,omitempty"`
	Header     []string   `json:"header"`
	Rows       [][]string `json:"rows"`
	Total      []string   `json:"total,omitempty"`
}

// ReportSection agrupa os blocos renderizados de uma seção de resultados.
// Corrected marca a seção atualizada com SELIC, que a camada de exibição
// separa visualmente da seção base.
type ReportSection struct {
	Title     string        `json:"title"`
	Corrected bool          `json:"corrected,omitempty"`
	Blocks    []ReportBlock `json:"blocks"`
}

// ReportDocument é o documento completo pronto para exibição ou exportação:
// cabeçalho identificador mais uma ou duas seções.
type ReportDocument struct {
	ID          string          `json:"id"`
	CreatedAt   string          `json:"created_at"`
	CorrecaoAte string          `json:"correcao_ate,omitempty"`
	Sections    []ReportSection `json:"sections"`
}
