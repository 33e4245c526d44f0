package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/servfaz/servfaz-cli/internal/application/render"
	"github.com/servfaz/servfaz-cli/internal/shared/types"
)

// RunHistory lista os cálculos salvos no backend.
func (uc *CalculationUseCase) RunHistory(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.prepareArgs(args); err != nil {
		return err
	}

	status := uc.console.Status("Carregando histórico...")
	results, err := uc.apiRepo.ListResults(ctx, args.Limit)
	status.Stop()
	if err != nil {
		uc.console.LogError("%s", err)
		return err
	}

	if len(results) == 0 {
		uc.console.LogInfo("Nenhum cálculo no histórico.")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("ID")
	table.AddColumn("Data")
	table.AddColumn("Município")
	table.AddColumn("Correção até")
	for _, item := range results {
		table.AddRow(item.ID, render.FormatTimestamp(item.CreatedAt), item.Municipio, item.CorrecaoAte)
	}

	uc.console.Print(table.Render())
	uc.console.LogInfo("%d cálculo(s) no histórico.", len(results))
	return nil
}

// RunShow recupera um cálculo do histórico e exibe seu documento completo.
func (uc *CalculationUseCase) RunShow(ctx context.Context, id string, args *types.CLIArgs) error {
	if err := uc.prepareArgs(args); err != nil {
		return err
	}

	status := uc.console.Status(fmt.Sprintf("Carregando cálculo %s...", id))
	detail, err := uc.apiRepo.GetResult(ctx, id)
	status.Stop()
	if err != nil {
		if errors.Is(err, types.ErrResultNotFound) {
			uc.console.LogError("Cálculo %s não encontrado.", id)
		} else {
			uc.console.LogError("Falha ao carregar os detalhes: %s", err)
		}
		return err
	}

	doc := render.ComposeDocument(detail.Payload())
	if doc == nil {
		uc.console.LogError("%s", types.ErrEmptyResult)
		return types.ErrEmptyResult
	}

	uc.displayDocument(doc)
	uc.exportDocument(doc, args)
	return nil
}

// RunDelete exclui um cálculo do histórico após confirmação e recarrega a
// listagem (sem remoção otimista local).
func (uc *CalculationUseCase) RunDelete(ctx context.Context, id string, args *types.CLIArgs) error {
	if err := uc.prepareArgs(args); err != nil {
		return err
	}

	if !args.Yes && !uc.console.Confirm(fmt.Sprintf("Excluir o cálculo %s?", id)) {
		uc.console.LogInfo("Exclusão cancelada.")
		return nil
	}

	if err := uc.apiRepo.DeleteResult(ctx, id); err != nil {
		if errors.Is(err, types.ErrResultNotFound) {
			uc.console.LogError("Cálculo %s não encontrado.", id)
		} else {
			uc.console.LogError("Falha ao excluir: %s", err)
		}
		return err
	}

	uc.console.LogSuccess("Cálculo %s excluído.", id)
	return uc.RunHistory(ctx, args)
}

// RunStatus verifica se o backend de cálculo está acessível.
func (uc *CalculationUseCase) RunStatus(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.prepareArgs(args); err != nil {
		return err
	}

	status, err := uc.apiRepo.CheckHealth(ctx)
	if err != nil {
		uc.console.LogError("%s", err)
		return err
	}

	uc.console.LogSuccess("Backend online: %s", status.Service)
	return nil
}
