// Package adapters provides the repository implementations for the property feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/usecase"
)

// propertyGorm is the GORM implementation of the PropertyRepository interface.
type propertyGorm struct {
	db *gorm.DB
}

// Compile-time check that propertyGorm implements usecase.PropertyRepository.
var _ usecase.PropertyRepository = (*propertyGorm)(nil)

// NewPropertyGorm creates a new propertyGorm backed by the given gorm.DB connection.
func NewPropertyGorm(db *gorm.DB) *propertyGorm {
	return &propertyGorm{db: db}
}

// FindAll returns all listings ordered newest first.
func (r *propertyGorm) FindAll(ctx context.Context) ([]entity.Property, error) {
	var out []entity.Property
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID returns the listing with the given ID.
// It returns usecase.ErrPropertyNotFound when no listing exists.
func (r *propertyGorm) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	var p entity.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new listing.
func (r *propertyGorm) Create(ctx context.Context, p *entity.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update persists all fields of an existing listing.
func (r *propertyGorm) Update(ctx context.Context, p *entity.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the listing with the given ID.
// It returns usecase.ErrPropertyNotFound when no row was deleted.
func (r *propertyGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPropertyNotFound
	}
	return nil
}
