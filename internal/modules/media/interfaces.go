package media

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type MediaStore interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Media, error)
	ListByOwner(ctx context.Context, tenantID uuid.UUID, ownerType domain.MediaOwner, ownerID uuid.UUID) ([]domain.Media, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ObjectStore uploads and removes blobs. Backed by S3 in production.
type ObjectStore interface {
	Upload(ctx context.Context, tenantID uuid.UUID, file *multipart.FileHeader) (key, url string, err error)
	Delete(ctx context.Context, key string) error
}

type PropertyReader interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error)
}

type UnitReader interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error)
}
