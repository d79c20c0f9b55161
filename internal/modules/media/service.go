package media

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"spacehub/internal/domain"
)

type Service struct {
	media      MediaStore
	objects    ObjectStore
	properties PropertyReader
	units      UnitReader
	log        *logrus.Logger
}

func NewService(media MediaStore, objects ObjectStore, properties PropertyReader, units UnitReader, log *logrus.Logger) *Service {
	return &Service{media: media, objects: objects, properties: properties, units: units, log: log}
}

// Upload stores the file and records it against a property or unit. The
// owner must belong to the caller's tenant.
func (s *Service) Upload(ctx context.Context, tenantID uuid.UUID, ownerType domain.MediaOwner, ownerID uuid.UUID, file *multipart.FileHeader, isCover bool) (*domain.Media, error) {
	if s.objects == nil {
		return nil, fmt.Errorf("%w: object storage not configured", domain.ErrInvalidState)
	}

	switch ownerType {
	case domain.MediaOwnerProperty:
		if _, err := s.properties.GetByID(ctx, tenantID, ownerID); err != nil {
			return nil, err
		}
	case domain.MediaOwnerUnit:
		if _, err := s.units.GetByID(ctx, tenantID, ownerID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown owner type %q", domain.ErrValidation, ownerType)
	}

	key, url, err := s.objects.Upload(ctx, tenantID, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	m := &domain.Media{
		TenantID:    tenantID,
		OwnerType:   ownerType,
		OwnerID:     ownerID,
		URL:         url,
		StorageKey:  key,
		ContentType: file.Header.Get("Content-Type"),
		SizeBytes:   file.Size,
		IsCover:     isCover,
	}
	if err := s.media.Create(ctx, m); err != nil {
		// The DB row failed; don't leave the blob orphaned.
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			s.log.WithError(delErr).WithField("key", key).Error("orphaned media object")
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) ListByOwner(ctx context.Context, tenantID uuid.UUID, ownerType domain.MediaOwner, ownerID uuid.UUID) ([]domain.Media, error) {
	return s.media.ListByOwner(ctx, tenantID, ownerType, ownerID)
}

// Delete removes the record and the stored object.
func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	m, err := s.media.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.media.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	if s.objects == nil {
		return nil
	}
	if err := s.objects.Delete(ctx, m.StorageKey); err != nil {
		s.log.WithError(err).WithField("key", m.StorageKey).Error("delete media object")
	}
	return nil
}
