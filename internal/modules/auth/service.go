package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"spacehub/internal/domain"
	jwtsvc "spacehub/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users   UserStore
	tenants TenantStore
	jwt     *jwtsvc.Service
}

func NewService(users UserStore, tenants TenantStore, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, tenants: tenants, jwt: jwt}
}

// Register creates a member account inside an active tenant and returns a
// signed token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	tenant, err := s.tenants.GetByID(ctx, req.TenantID)
	if err != nil {
		return nil, "", err
	}
	if tenant.Status != domain.TenantActive {
		return nil, "", fmt.Errorf("%w: tenant is %s", domain.ErrInvalidState, tenant.Status)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, tenant.ID, email); err == nil {
		return nil, "", domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleMember,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.TenantID, string(u.Role))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.GetByEmail(ctx, req.TenantID, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.TenantID, string(u.Role))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Me(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, tenantID, userID)
}
