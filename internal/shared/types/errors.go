package types

import "errors"

var (
	ErrResultNotFound = errors.New("cálculo não encontrado")
	ErrEmptyResult    = errors.New("a API retornou um payload sem results_base")
	ErrMissingField   = errors.New("campo obrigatório não informado")
	ErrInvalidDate    = errors.New("data inválida; use o formato DD/MM/AAAA")
)
