package domain

import "time"

type PartnerType string

const (
	PartnerTypeDelivery PartnerType = "DELIVERY"
	PartnerTypeLead     PartnerType = "LEAD"
)

// Partner é um entregador ou parceiro captador (lead partner)
type Partner struct {
	ID        string      `json:"id"`
	Type      PartnerType `json:"type"`
	Name      *string     `json:"name"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Vehicle   *string     `json:"vehicle"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}
