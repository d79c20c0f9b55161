package widget

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type WidgetStore interface {
	Create(ctx context.Context, w *domain.Widget) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Widget, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Widget, error)
	Save(ctx context.Context, w *domain.Widget) error
	CreateForm(ctx context.Context, f *domain.FormBuilder) error
	GetFormByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.FormBuilder, error)
	ListForms(ctx context.Context, tenantID uuid.UUID) ([]domain.FormBuilder, error)
}

// LeadCreator receives submissions coming through embedded widgets.
type LeadCreator interface {
	Create(ctx context.Context, l *domain.Lead) error
}
