package domain

import "time"

type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
	StoreStatusPending  StoreStatus = "PENDING"
)

// Store é uma loja cadastrada no marketplace. Campos opcionais podem vir nulos do banco.
type Store struct {
	ID        string      `json:"id"`
	Name      *string     `json:"name"`
	City      *string     `json:"city"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Status    StoreStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
