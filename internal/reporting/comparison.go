package reporting

import (
	"fmt"

	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

// Delta é a variação de um campo entre os dois últimos snapshots da série.
// Quando Comparable é false, Percent vale 0 apenas para não quebrar a exibição; não
// tem significado matemático e o painel deve esconder a variação.
type Delta struct {
	Field      domain.SnapshotField
	Current    float64
	Previous   float64
	Percent    float64
	Comparable bool
}

// Err retorna domain.ErrInsufficientData quando a variação não é comparável
func (d Delta) Err() error {
	if d.Comparable {
		return nil
	}
	return domain.ErrInsufficientData
}

func (d Delta) ToDomain() domain.SnapshotDelta {
	return domain.SnapshotDelta{
		Field:      d.Field,
		Current:    d.Current,
		Previous:   d.Previous,
		Percent:    d.Percent,
		Comparable: d.Comparable,
	}
}

// CompareLatest calcula ((atual - anterior) / anterior) * 100 entre os dois últimos
// elementos da série, arredondado para uma casa decimal. A série deve estar em ordem
// cronológica crescente e nunca é reordenada.
//
// Com menos de dois elementos, ou anterior igual a zero, retorna Percent 0 e
// Comparable false.
func CompareLatest(snapshots []domain.PeriodSnapshot, field domain.SnapshotField) (Delta, error) {
	delta := Delta{Field: field}

	if len(snapshots) == 0 {
		if _, ok := (domain.PeriodSnapshot{}).Value(field); !ok {
			return Delta{}, unknownField(field)
		}
		return delta, nil
	}

	last := len(snapshots) - 1
	current, ok := snapshots[last].Value(field)
	if !ok {
		return Delta{}, unknownField(field)
	}
	delta.Current = current

	if len(snapshots) < 2 {
		return delta, nil
	}

	previousSnapshot := snapshots[last-1]
	if !previousSnapshot.Date.IsZero() && !snapshots[last].Date.IsZero() &&
		previousSnapshot.Date.After(snapshots[last].Date) {
		return Delta{}, domain.NewValidationError("date", last, fmt.Sprintf(
			"snapshots out of order: %s after %s",
			previousSnapshot.Date.Format("2006-01-02"),
			snapshots[last].Date.Format("2006-01-02"),
		))
	}

	previous, _ := previousSnapshot.Value(field)
	delta.Previous = previous

	if previous == 0 {
		return delta, nil
	}

	delta.Percent = utils.RoundWithOneDecimalPlace(utils.Finite((current - previous) / previous * 100))
	delta.Comparable = true

	return delta, nil
}

// CompareAll executa CompareLatest para cada campo informado
func CompareAll(snapshots []domain.PeriodSnapshot, fields []domain.SnapshotField) ([]Delta, error) {
	deltas := make([]Delta, 0, len(fields))
	for _, field := range fields {
		delta, err := CompareLatest(snapshots, field)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

func unknownField(field domain.SnapshotField) error {
	return domain.NewValidationError("field", -1, fmt.Sprintf("unknown snapshot field %q", field))
}
