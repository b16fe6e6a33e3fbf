package request

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

type PricingConstraintsRequest struct {
	AttendeeCount  *int    `json:"attendee_count"`
	VenueTier      *string `json:"venue_tier"`
	TransportCount *int    `json:"transport_count"`
	Flowers        *bool   `json:"flowers"`
}

// GenerateRequest is the optional body for package generation. An absent or
// empty body means "no overrides, price from the case attributes".
type GenerateRequest struct {
	Constraints *PricingConstraintsRequest `json:"constraints"`
}

func (r GenerateRequest) ToConstraints() *entities.PricingConstraints {
	if r.Constraints == nil {
		return nil
	}
	return &entities.PricingConstraints{
		AttendeeCount:  r.Constraints.AttendeeCount,
		VenueTier:      r.Constraints.VenueTier,
		TransportCount: r.Constraints.TransportCount,
		Flowers:        r.Constraints.Flowers,
	}
}
