package domain

// Counter acumula quantidade e soma de valores de um tipo de evento
type Counter struct {
	Count int64   `json:"count"`
	Sum   float64 `json:"sum"`
}

// Bucket é a acumulação de contadores para uma janela de tempo (ou entidade).
// Vive apenas durante uma passada de agregação.
type Bucket struct {
	Key    string                `json:"key"`
	Count  int64                 `json:"count"`
	Sum    float64               `json:"sum"`
	ByKind map[EventKind]Counter `json:"by_kind"`
}

func NewBucket(key string) *Bucket {
	return &Bucket{
		Key:    key,
		ByKind: make(map[EventKind]Counter, len(EventKinds)),
	}
}

// Kind retorna o contador do tipo informado (zerado quando não houve eventos)
func (b Bucket) Kind(kind EventKind) Counter {
	return b.ByKind[kind]
}
