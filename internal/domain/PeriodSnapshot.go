package domain

import "time"

// SnapshotField nomeia um campo numérico de PeriodSnapshot
type SnapshotField string

const (
	SnapshotRevenue             SnapshotField = "revenue"
	SnapshotOrders              SnapshotField = "orders"
	SnapshotActivePartners      SnapshotField = "active_partners"
	SnapshotStoresOnboarded     SnapshotField = "stores_onboarded"
	SnapshotNewCustomers        SnapshotField = "new_customers"
	SnapshotDeliveriesCompleted SnapshotField = "deliveries_completed"
	SnapshotCommission          SnapshotField = "commission"
)

// SnapshotFields lista todos os campos comparáveis, na ordem de exibição do painel
var SnapshotFields = []SnapshotField{
	SnapshotRevenue,
	SnapshotOrders,
	SnapshotActivePartners,
	SnapshotStoresOnboarded,
	SnapshotNewCustomers,
	SnapshotDeliveriesCompleted,
	SnapshotCommission,
}

// PeriodSnapshot é uma linha de uma série diária pré-agregada.
// A série chega em ordem cronológica crescente e é tratada como somente leitura.
type PeriodSnapshot struct {
	ID                  int64     `json:"id"`
	Date                time.Time `json:"date"`
	Revenue             float64   `json:"revenue"`
	Orders              int64     `json:"orders"`
	ActivePartners      int64     `json:"active_partners"`
	StoresOnboarded     int64     `json:"stores_onboarded"`
	NewCustomers        int64     `json:"new_customers"`
	DeliveriesCompleted int64     `json:"deliveries_completed"`
	Commission          float64   `json:"commission"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Value retorna o valor numérico do campo; false quando o campo não existe
func (s PeriodSnapshot) Value(field SnapshotField) (float64, bool) {
	switch field {
	case SnapshotRevenue:
		return s.Revenue, true
	case SnapshotOrders:
		return float64(s.Orders), true
	case SnapshotActivePartners:
		return float64(s.ActivePartners), true
	case SnapshotStoresOnboarded:
		return float64(s.StoresOnboarded), true
	case SnapshotNewCustomers:
		return float64(s.NewCustomers), true
	case SnapshotDeliveriesCompleted:
		return float64(s.DeliveriesCompleted), true
	case SnapshotCommission:
		return s.Commission, true
	}
	return 0, false
}
