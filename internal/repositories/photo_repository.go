package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
	"tripdesk/pkg/utils"
)

type PhotoRepositoryInterface interface {
	URLExists(ctx context.Context, imageURL string) (bool, error)
	CountByLandmarkPrefix(ctx context.Context, city string, landmark string) (int64, error)
	Insert(ctx context.Context, photo *db_models.DestinationImage) error
	Lookup(ctx context.Context, city string, landmark string) (*db_models.DestinationImage, error)
	ListLandmarks(ctx context.Context, city string) ([]string, error)
	ListAll(ctx context.Context) ([]db_models.DestinationImage, error)
}

func NewPhotoRepository(db *gorm.DB) PhotoRepositoryInterface {
	return &PhotoRepository{db: db}
}

// PhotoRepository reads and writes destination_images rows. A nil db means
// the store was not configured; every call then reports ErrStoreUnavailable
// and callers degrade to their next tier.
type PhotoRepository struct {
	db *gorm.DB
}

func (p *PhotoRepository) URLExists(ctx context.Context, imageURL string) (bool, error) {
	if p.db == nil {
		return false, utils.ErrStoreUnavailable
	}

	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.DestinationImage{}).
		Where("image_url = ?", imageURL).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *PhotoRepository) CountByLandmarkPrefix(ctx context.Context, city string, landmark string) (int64, error) {
	if p.db == nil {
		return 0, utils.ErrStoreUnavailable
	}

	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.DestinationImage{}).
		Where("city = ?", city).
		Where("landmark ILIKE ?", landmark+"%").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (p *PhotoRepository) Insert(ctx context.Context, photo *db_models.DestinationImage) error {
	if p.db == nil {
		return utils.ErrStoreUnavailable
	}

	return p.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(photo).Error
	})
}

func (p *PhotoRepository) Lookup(ctx context.Context, city string, landmark string) (*db_models.DestinationImage, error) {
	if p.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var photo db_models.DestinationImage
	err := p.db.WithContext(ctx).
		Where("city = ?", city).
		Where("landmark = ?", landmark).
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (p *PhotoRepository) ListLandmarks(ctx context.Context, city string) ([]string, error) {
	if p.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var landmarks []string
	err := p.db.WithContext(ctx).
		Model(&db_models.DestinationImage{}).
		Where("city = ?", city).
		Pluck("landmark", &landmarks).Error
	if err != nil {
		return nil, err
	}
	return landmarks, nil
}

func (p *PhotoRepository) ListAll(ctx context.Context) ([]db_models.DestinationImage, error) {
	if p.db == nil {
		return nil, utils.ErrStoreUnavailable
	}

	var photos []db_models.DestinationImage
	err := p.db.WithContext(ctx).
		Order("city").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
