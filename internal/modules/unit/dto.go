package unit

import (
	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CreateUnitRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Category   string    `json:"unit_category" binding:"required,oneof=apartment office desk meeting_room retail"`
	Capacity   int       `json:"capacity" binding:"omitempty,min=0"`
	SizeSqft   int       `json:"size_sqft" binding:"omitempty,min=0"`
}

type UpdateUnitRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status" binding:"omitempty,oneof=available occupied maintenance inactive"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
	SizeSqft *int    `json:"size_sqft" binding:"omitempty,min=0"`
}

type SetPricingRequest struct {
	Model    string  `json:"model" binding:"required,oneof=fixed hourly daily monthly yearly"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"omitempty,len=3"`
}

type RealEstateDetailRequest struct {
	Bedrooms  int  `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms int  `json:"bathrooms" binding:"omitempty,min=0"`
	Floor     int  `json:"floor"`
	YearBuilt int  `json:"year_built" binding:"omitempty,min=1800"`
	Furnished bool `json:"furnished"`
}

type CoworkingDetailRequest struct {
	DeskCount     int  `json:"desk_count" binding:"omitempty,min=0"`
	HasProjector  bool `json:"has_projector"`
	HasWhiteboard bool `json:"has_whiteboard"`
	AllDayAccess  bool `json:"all_day_access"`
}

type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

type AttachAmenityRequest struct {
	AmenityID uuid.UUID `json:"amenity_id" binding:"required"`
}

// The unit read model returns the domain entity directly; its gorm
// preloads (pricing, details, amenities) already carry json tags.
func toUnitResponse(u *domain.Unit) *domain.Unit { return u }
