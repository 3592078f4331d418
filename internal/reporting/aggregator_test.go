package reporting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func event(kind domain.EventKind, entityID string, at time.Time, value *float64) domain.RawEvent {
	return domain.RawEvent{Kind: kind, EntityID: entityID, OccurredAt: at, Value: value}
}

func TestAggregate(t *testing.T) {
	day1 := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		events   []domain.RawEvent
		keyOf    KeyFunc
		validate func(t *testing.T, set *BucketSet)
	}{
		{
			name:   "Sem eventos - conjunto vazio",
			events: []domain.RawEvent{},
			keyOf:  DayKey,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Equal(t, 0, set.Len())
				assert.Equal(t, int64(0), set.Events())
				assert.Empty(t, set.Buckets())
			},
		},
		{
			name: "Eventos de dois dias - buckets na ordem em que apareceram",
			events: []domain.RawEvent{
				event(domain.EventKindOrder, "store-1", day2, floatPtr(250)),
				event(domain.EventKindClick, "camp-1", day1, floatPtr(1.5)),
				event(domain.EventKindOrder, "store-1", day2, floatPtr(100)),
				event(domain.EventKindImpression, "camp-1", day1, nil),
			},
			keyOf: DayKey,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Equal(t, []string{"2024-01-16", "2024-01-15"}, set.Keys())

				first, ok := set.Get("2024-01-16")
				require.True(t, ok)
				assert.Equal(t, int64(2), first.Count)
				assert.Equal(t, 350.0, first.Sum)
				assert.Equal(t, domain.Counter{Count: 2, Sum: 350}, first.Kind(domain.EventKindOrder))

				second, ok := set.Get("2024-01-15")
				require.True(t, ok)
				assert.Equal(t, int64(2), second.Count)
				assert.Equal(t, 1.5, second.Sum)
				assert.Equal(t, domain.Counter{Count: 1, Sum: 1.5}, second.Kind(domain.EventKindClick))
				assert.Equal(t, domain.Counter{Count: 1, Sum: 0}, second.Kind(domain.EventKindImpression))
				assert.Equal(t, domain.Counter{}, second.Kind(domain.EventKindConversion))
			},
		},
		{
			name: "Agrupamento por entidade",
			events: []domain.RawEvent{
				event(domain.EventKindOrder, "store-a", day1, floatPtr(10)),
				event(domain.EventKindOrder, "store-b", day1, floatPtr(20)),
				event(domain.EventKindOrder, "store-a", day2, floatPtr(30)),
			},
			keyOf: EntityKey,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Equal(t, []string{"store-a", "store-b"}, set.Keys())
				a, _ := set.Get("store-a")
				assert.Equal(t, 40.0, a.Sum)
				assert.Equal(t, int64(2), a.Count)
			},
		},
		{
			name: "Agrupamento por mês",
			events: []domain.RawEvent{
				event(domain.EventKindOrder, "store-a", day1, floatPtr(10)),
				event(domain.EventKindOrder, "store-a", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), floatPtr(5)),
			},
			keyOf: MonthKey,
			validate: func(t *testing.T, set *BucketSet) {
				assert.Equal(t, []string{"01-2024", "02-2024"}, set.Keys())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Aggregate(tt.events, tt.keyOf)
			require.NoError(t, err)
			tt.validate(t, set)
		})
	}
}

func TestAggregate_ValidationErrors(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []domain.RawEvent
		keyOf  KeyFunc
		field  string
		index  int
	}{
		{
			name: "Evento sem data não tem chave de dia",
			events: []domain.RawEvent{
				event(domain.EventKindClick, "camp-1", at, nil),
				event(domain.EventKindClick, "camp-1", time.Time{}, nil),
			},
			keyOf: DayKey,
			field: "bucket_key",
			index: 1,
		},
		{
			name:   "Evento sem entidade",
			events: []domain.RawEvent{event(domain.EventKindOrder, "", at, floatPtr(10))},
			keyOf:  EntityKey,
			field:  "bucket_key",
			index:  0,
		},
		{
			name:   "Tipo de evento desconhecido",
			events: []domain.RawEvent{event(domain.EventKind("refund"), "store-1", at, nil)},
			keyOf:  DayKey,
			field:  "kind",
			index:  0,
		},
		{
			name:   "Valor não finito",
			events: []domain.RawEvent{event(domain.EventKindOrder, "store-1", at, floatPtr(math.NaN()))},
			keyOf:  DayKey,
			field:  "value",
			index:  0,
		},
		{
			name:   "Sem função de chave",
			events: []domain.RawEvent{event(domain.EventKindOrder, "store-1", at, nil)},
			keyOf:  nil,
			field:  "key_func",
			index:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Aggregate(tt.events, tt.keyOf)
			assert.Nil(t, set)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.index, vErr.Index)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestBucketSet_ReturnsCopies(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	set, err := Aggregate([]domain.RawEvent{event(domain.EventKindOrder, "s", at, floatPtr(10))}, DayKey)
	require.NoError(t, err)

	buckets := set.Buckets()
	buckets[0].Count = 99
	buckets[0].ByKind[domain.EventKindOrder] = domain.Counter{Count: 99}

	keys := set.Keys()
	keys[0] = "changed"

	bucket, ok := set.Get("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, int64(1), bucket.Count)
	assert.Equal(t, int64(1), bucket.Kind(domain.EventKindOrder).Count)
	assert.Equal(t, []string{"2024-01-15"}, set.Keys())
}

func TestDayKeyIn(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC) // 01:30 do dia 16 em IST

	assert.Equal(t, "2024-01-15", DayKey(event(domain.EventKindClick, "c", at, nil)))
	assert.Equal(t, "2024-01-16", DayKeyIn(kolkata)(event(domain.EventKindClick, "c", at, nil)))
	assert.Equal(t, "", DayKeyIn(kolkata)(event(domain.EventKindClick, "c", time.Time{}, nil)))
}
