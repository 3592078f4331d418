package reporting

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldFunc extrai um campo de texto do registro. nil significa campo ausente.
type FieldFunc[T any] func(T) *string

// Predicate diz se um registro casa com a busca
type Predicate[T any] func(T) bool

// Matches monta o predicado de busca: a consulta em minúsculas deve ser substring de
// pelo menos um dos campos em minúsculas. Consulta vazia casa com tudo; campo nulo
// nunca casa com consulta não vazia.
func Matches[T any](query string, fields ...FieldFunc[T]) Predicate[T] {
	if query == "" {
		return func(T) bool { return true }
	}

	// Caser guarda estado; cada predicado usa o seu
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	return func(item T) bool {
		for _, field := range fields {
			value := field(item)
			if value == nil {
				continue
			}
			if strings.Contains(lower.String(*value), needle) {
				return true
			}
		}
		return false
	}
}

// Filter retorna, em nova fatia, os registros que casam com a busca
func Filter[T any](items []T, query string, fields ...FieldFunc[T]) []T {
	match := Matches(query, fields...)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// StringField adapta um campo string obrigatório para FieldFunc
func StringField[T any](get func(T) string) FieldFunc[T] {
	return func(item T) *string {
		value := get(item)
		return &value
	}
}
