// Package usecase implements the business logic for the property feature.
package usecase

import (
	"context"
	"errors"

	"estate_backend/internal/feature/property/domain/entity"
)

// ErrPropertyNotFound is returned when no listing exists for the given ID.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository abstracts the persistence layer for listings.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type PropertyRepository interface {
	// FindAll returns all listings, newest first.
	FindAll(ctx context.Context) ([]entity.Property, error)

	// FindByID returns the listing with the given ID or ErrPropertyNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Property, error)

	// Create persists a new listing.
	Create(ctx context.Context, p *entity.Property) error

	// Update persists changes to an existing listing.
	Update(ctx context.Context, p *entity.Property) error

	// Delete removes the listing with the given ID or returns
	// ErrPropertyNotFound when it does not exist.
	Delete(ctx context.Context, id uint) error
}

// propertyUsecase implements the listing operations.
type propertyUsecase struct {
	props PropertyRepository
}

// NewPropertyUsecase creates a new propertyUsecase.
func NewPropertyUsecase(props PropertyRepository) *propertyUsecase {
	return &propertyUsecase{props: props}
}

// List returns all listings, newest first.
func (u *propertyUsecase) List(ctx context.Context) ([]entity.Property, error) {
	return u.props.FindAll(ctx)
}

// Get returns one listing by ID.
func (u *propertyUsecase) Get(ctx context.Context, id uint) (*entity.Property, error) {
	return u.props.FindByID(ctx, id)
}

// Create persists a new listing and returns it with its assigned ID.
func (u *propertyUsecase) Create(ctx context.Context, p *entity.Property) (*entity.Property, error) {
	if err := u.props.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the listing fields of an existing record and returns the
// updated record. The identifier and timestamps are kept.
func (u *propertyUsecase) Update(ctx context.Context, id uint, in *entity.Property) (*entity.Property, error) {
	existing, err := u.props.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Type = in.Type
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Location = in.Location
	existing.SquareFeet = in.SquareFeet
	existing.YearBuilt = in.YearBuilt
	existing.Bedrooms = in.Bedrooms

	if err := u.props.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes one listing by ID.
func (u *propertyUsecase) Delete(ctx context.Context, id uint) error {
	return u.props.Delete(ctx, id)
}
