package tenant

import (
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

// CreateTenantRequest onboards a new tenant together with its first admin
// account.
type CreateTenantRequest struct {
	Name          string `json:"name" binding:"required"`
	Domain        string `json:"domain" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=real_estate coworking mixed"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
	AdminName     string `json:"admin_name" binding:"required"`
}

type UpdateTenantRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,oneof=active suspended inactive"`
}

type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Domain:    t.Domain,
		Type:      string(t.Type),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
