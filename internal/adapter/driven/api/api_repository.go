package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/servfaz/servfaz-cli/internal/domain/entity"
	"github.com/servfaz/servfaz-cli/internal/domain/repository"
	"github.com/servfaz/servfaz-cli/internal/shared/types"
)

// DefaultTimeout cobre o pior caso do backend: abrir a planilha no Excel e
// recalcular pode levar dezenas de segundos.
const DefaultTimeout = 120 * time.Second

// apiError é o corpo de erro estruturado retornado pelo backend em respostas
// não-2xx.
type apiError struct {
	Detail string `json:"detail"`
}

// listResponse embala a listagem do histórico.
type listResponse struct {
	Results []entity.CalculationSummary `json:"results"`
	Count   int                         `json:"count"`
}

// deleteResponse é a confirmação de exclusão do backend.
type deleteResponse struct {
	Message string `json:"message"`
}

// APIRepositoryImpl implementa o CalcAPIRepository sobre a API HTTP do
// backend de cálculo.
type APIRepositoryImpl struct {
	client *resty.Client
}

// NewAPIRepository cria um cliente para a API de cálculo.
func NewAPIRepository(baseURL string, timeout time.Duration) repository.CalcAPIRepository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &APIRepositoryImpl{client: client}
}

// SetBaseURL redefine o endereço do backend.
func (r *APIRepositoryImpl) SetBaseURL(baseURL string) {
	r.client.SetBaseURL(baseURL)
}

// Calculate submete o formulário e decodifica o payload de resultado.
// Erros estruturados do backend (campo detail) são repassados literalmente.
func (r *APIRepositoryImpl) Calculate(ctx context.Context, input entity.CalculateInput) (*entity.ResultPayload, error) {
	var payload entity.ResultPayload
	var apiErr apiError

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&payload).
		SetError(&apiErr).
		Post("/api/calculate")
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar a API de cálculo: %w", err)
	}

	if resp.IsError() {
		if apiErr.Detail != "" {
			return nil, fmt.Errorf("erro ao processar cálculo: %s", apiErr.Detail)
		}
		return nil, fmt.Errorf("erro ao processar cálculo: HTTP %d", resp.StatusCode())
	}

	return &payload, nil
}

// ListResults lista os últimos cálculos salvos.
func (r *APIRepositoryImpl) ListResults(ctx context.Context, limit int) ([]entity.CalculationSummary, error) {
	var list listResponse
	var apiErr apiError

	req := r.client.R().
		SetContext(ctx).
		SetResult(&list).
		SetError(&apiErr)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/results")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar o histórico: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("erro ao listar o histórico: HTTP %d", resp.StatusCode())
	}

	return list.Results, nil
}

// GetResult recupera um cálculo completo pelo ID.
func (r *APIRepositoryImpl) GetResult(ctx context.Context, id string) (*entity.CalculationDetail, error) {
	var detail entity.CalculationDetail
	var apiErr apiError

	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&detail).
		SetError(&apiErr).
		SetPathParam("id", id).
		Get("/api/results/{id}")
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os detalhes do cálculo: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, types.ErrResultNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("erro ao carregar os detalhes do cálculo: HTTP %d", resp.StatusCode())
	}

	return &detail, nil
}

// DeleteResult remove um cálculo pelo ID.
func (r *APIRepositoryImpl) DeleteResult(ctx context.Context, id string) error {
	var confirmation deleteResponse
	var apiErr apiError

	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&confirmation).
		SetError(&apiErr).
		SetPathParam("id", id).
		Delete("/api/results/{id}")
	if err != nil {
		return fmt.Errorf("erro ao excluir o cálculo: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return types.ErrResultNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("erro ao excluir o cálculo: HTTP %d", resp.StatusCode())
	}

	return nil
}

// CheckHealth consulta o endpoint raiz do backend.
func (r *APIRepositoryImpl) CheckHealth(ctx context.Context) (*entity.HealthStatus, error) {
	var status entity.HealthStatus

	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("backend inacessível: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("backend respondeu HTTP %d", resp.StatusCode())
	}

	return &status, nil
}
