package repository

import (
	"context"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
)

// CalcAPIRepository define a interface com a API de cálculo jurídico.
type CalcAPIRepository interface {
	// SetBaseURL redefine o endereço do backend (flag --api-url ou arquivo
	// de configuração).
	SetBaseURL(baseURL string)

	// Calculate submete os dados do processo e retorna as tabelas calculadas.
	Calculate(ctx context.Context, input entity.CalculateInput) (*entity.ResultPayload, error)

	// ListResults lista os últimos cálculos salvos (projeção resumida).
	ListResults(ctx context.Context, limit int) ([]entity.CalculationSummary, error)

	// GetResult recupera um cálculo completo pelo ID.
	GetResult(ctx context.Context, id string) (*entity.CalculationDetail, error)

	// DeleteResult remove um cálculo pelo ID.
	DeleteResult(ctx context.Context, id string) error

	// CheckHealth consulta o endpoint de status do backend.
	CheckHealth(ctx context.Context) (*entity.HealthStatus, error)
}
