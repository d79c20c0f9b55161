package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"spacehub/internal/domain"
)

type Service struct {
	tenants TenantStore
	users   UserStore
}

func NewService(tenants TenantStore, users UserStore) *Service {
	return &Service{tenants: tenants, users: users}
}

// Onboard creates the tenant and its first admin account. The domain must
// be globally unique.
func (s *Service) Onboard(ctx context.Context, req CreateTenantRequest) (*domain.Tenant, *domain.User, error) {
	tenantDomain := strings.ToLower(strings.TrimSpace(req.Domain))
	if _, err := s.tenants.GetByDomain(ctx, tenantDomain); err == nil {
		return nil, nil, fmt.Errorf("%w: domain already taken", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	t := &domain.Tenant{
		Name:   req.Name,
		Domain: tenantDomain,
		Type:   domain.TenantType(req.Type),
		Status: domain.TenantActive,
	}
	if err := s.tenants.Create(ctx, t); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	admin := &domain.User{
		TenantID:     t.ID,
		Email:        strings.ToLower(strings.TrimSpace(req.AdminEmail)),
		PasswordHash: string(hash),
		Name:         req.AdminName,
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, nil, err
	}

	return t, admin, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.tenants.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Tenant, int64, error) {
	return s.tenants.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*domain.Tenant, error) {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Status != nil {
		t.Status = domain.TenantStatus(*req.Status)
	}

	if err := s.tenants.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
