package property

import (
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CreatePropertyRequest struct {
	Name         string `json:"name" binding:"required"`
	PropertyType string `json:"property_type" binding:"required,oneof=residential commercial coworking_hub mixed_use"`
	Description  string `json:"description"`
	AddressLine  string `json:"address_line"`
	City         string `json:"city"`
	State        string `json:"state"`
	CountryCode  string `json:"country_code"`
	PostalCode   string `json:"postal_code"`
}

type UpdatePropertyRequest struct {
	Name        *string `json:"name"`
	Status      *string `json:"status" binding:"omitempty,oneof=active draft inactive"`
	Description *string `json:"description"`
	AddressLine *string `json:"address_line"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	CountryCode *string `json:"country_code"`
	PostalCode  *string `json:"postal_code"`
}

type PropertyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	AddressLine  string    `json:"address_line,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	CountryCode  string    `json:"country_code,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		PropertyType: string(p.PropertyType),
		Status:       string(p.Status),
		Description:  p.Description,
		AddressLine:  p.AddressLine,
		City:         p.City,
		State:        p.State,
		CountryCode:  p.CountryCode,
		PostalCode:   p.PostalCode,
		CreatedAt:    p.CreatedAt,
	}
}
