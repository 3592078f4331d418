package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indica que a fonte de dados falhou ou não retornou registros.
	// A camada de apresentação deve exibir "dados indisponíveis" e não um gráfico zerado.
	ErrNoData = errors.New("data unavailable")

	// ErrInsufficientData indica que não há pontos suficientes para uma comparação.
	// Não é fatal: o valor retornado é neutro e o chamador decide se exibe.
	ErrInsufficientData = errors.New("insufficient data for comparison")
)

// ValidationError representa um campo obrigatório ausente ou malformado na entrada.
// Aborta a passada atual sem aplicar resultados parciais.
type ValidationError struct {
	Field  string
	Reason string
	Index  int // posição do registro na entrada, -1 quando não se aplica
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s at index %d: %s", e.Field, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field string, index int, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Index:  index,
	}
}

// IsValidationError informa se algum erro da cadeia é um ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// SourceError indica falha ao consultar a fonte de dados. Também satisfaz
// errors.Is(err, ErrNoData), pois o painel trata os dois casos como indisponíveis.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("data source failure: %v", e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrNoData, e.Err}
}

func NewSourceError(err error) *SourceError {
	return &SourceError{Err: err}
}

// IsSourceError informa se algum erro da cadeia é um SourceError
func IsSourceError(err error) bool {
	var sErr *SourceError
	return errors.As(err, &sErr)
}
