// Package reporting contém os cálculos de relatório do painel: agregação de eventos em
// buckets, razões derivadas, comparação entre períodos, ranking e filtro de busca.
// Todas as funções são puras e podem ser chamadas em paralelo.
package reporting

import (
	"math"
	"time"

	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

// KeyFunc calcula a chave de bucket de um evento. Chave vazia significa evento malformado.
type KeyFunc func(event domain.RawEvent) string

// DayKey agrupa por dia de calendário (yyyy-mm-dd) no fuso do próprio evento
func DayKey(event domain.RawEvent) string {
	if event.OccurredAt.IsZero() {
		return ""
	}
	return event.OccurredAt.Format(time.DateOnly)
}

// DayKeyIn agrupa por dia de calendário no fuso informado
func DayKeyIn(loc *time.Location) KeyFunc {
	return func(event domain.RawEvent) string {
		if event.OccurredAt.IsZero() {
			return ""
		}
		return event.OccurredAt.In(loc).Format(time.DateOnly)
	}
}

// MonthKey agrupa por mês no formato mm-yyyy
func MonthKey(event domain.RawEvent) string {
	if event.OccurredAt.IsZero() {
		return ""
	}
	return event.OccurredAt.Format(utils.MonthLayout)
}

// EntityKey agrupa pela entidade (campanha, loja)
func EntityKey(event domain.RawEvent) string {
	return event.EntityID
}

// BucketSet é o resultado de uma agregação: buckets por chave, na ordem em que as chaves
// apareceram pela primeira vez.
type BucketSet struct {
	keys    []string
	buckets map[string]*domain.Bucket
	events  int64
}

func newBucketSet() *BucketSet {
	return &BucketSet{
		keys:    make([]string, 0),
		buckets: make(map[string]*domain.Bucket),
	}
}

// Keys retorna as chaves na ordem de inserção
func (s *BucketSet) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get retorna uma cópia do bucket da chave
func (s *BucketSet) Get(key string) (domain.Bucket, bool) {
	bucket, exists := s.buckets[key]
	if !exists {
		return domain.Bucket{}, false
	}
	return copyBucket(bucket), true
}

// Buckets retorna cópias dos buckets na ordem de inserção
func (s *BucketSet) Buckets() []domain.Bucket {
	buckets := make([]domain.Bucket, 0, len(s.keys))
	for _, key := range s.keys {
		buckets = append(buckets, copyBucket(s.buckets[key]))
	}
	return buckets
}

func (s *BucketSet) Len() int {
	return len(s.keys)
}

// Events é o total de eventos contabilizados na passada
func (s *BucketSet) Events() int64 {
	return s.events
}

// Aggregate dobra a sequência de eventos em buckets pela chave de keyOf.
// Um evento malformado aborta toda a agregação com *domain.ValidationError; nenhum
// evento é descartado em silêncio.
func Aggregate(events []domain.RawEvent, keyOf KeyFunc) (*BucketSet, error) {
	if keyOf == nil {
		return nil, domain.NewValidationError("key_func", -1, "bucketing key function is required")
	}

	set := newBucketSet()

	for i, event := range events {
		if err := validateEvent(event, i); err != nil {
			return nil, err
		}

		key := keyOf(event)
		if key == "" {
			return nil, domain.NewValidationError("bucket_key", i, "event has no bucketing key")
		}

		bucket, exists := set.buckets[key]
		if !exists {
			bucket = domain.NewBucket(key)
			set.buckets[key] = bucket
			set.keys = append(set.keys, key)
		}

		accumulate(bucket, event)
		set.events++
	}

	return set, nil
}

func validateEvent(event domain.RawEvent, index int) error {
	if !event.Kind.IsValid() {
		return domain.NewValidationError("kind", index, "unknown event kind "+string(event.Kind))
	}

	if event.Value != nil && (math.IsNaN(*event.Value) || math.IsInf(*event.Value, 0)) {
		return domain.NewValidationError("value", index, "value must be a finite number")
	}

	return nil
}

func accumulate(bucket *domain.Bucket, event domain.RawEvent) {
	value := 0.0
	if event.Value != nil {
		value = *event.Value
	}

	bucket.Count++
	bucket.Sum += value

	counter := bucket.ByKind[event.Kind]
	counter.Count++
	counter.Sum += value
	bucket.ByKind[event.Kind] = counter
}

func copyBucket(bucket *domain.Bucket) domain.Bucket {
	cp := domain.Bucket{
		Key:    bucket.Key,
		Count:  bucket.Count,
		Sum:    bucket.Sum,
		ByKind: make(map[domain.EventKind]domain.Counter, len(bucket.ByKind)),
	}
	for kind, counter := range bucket.ByKind {
		cp.ByKind[kind] = counter
	}
	return cp
}
