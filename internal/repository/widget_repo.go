package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type WidgetRepository struct {
	db *gorm.DB
}

func NewWidgetRepository(db *gorm.DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

func (r *WidgetRepository) Create(ctx context.Context, w *domain.Widget) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WidgetRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Widget, error) {
	var w domain.Widget
	err := r.db.WithContext(ctx).First(&w, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WidgetRepository) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Widget, error) {
	var out []domain.Widget
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at").Find(&out).Error
	return out, err
}

func (r *WidgetRepository) Save(ctx context.Context, w *domain.Widget) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WidgetRepository) CreateForm(ctx context.Context, f *domain.FormBuilder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *WidgetRepository) GetFormByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.FormBuilder, error) {
	var f domain.FormBuilder
	err := r.db.WithContext(ctx).First(&f, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *WidgetRepository) ListForms(ctx context.Context, tenantID uuid.UUID) ([]domain.FormBuilder, error) {
	var out []domain.FormBuilder
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at").Find(&out).Error
	return out, err
}
