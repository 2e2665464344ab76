// Package entity defines the domain entities for the property feature.
package entity

import "time"

// Location holds the structured location of a listing.
type Location struct {
	Address string `gorm:"size:255;not null" json:"address"`
	City    string `gorm:"size:255;not null" json:"city"`
	State   string `gorm:"size:255;not null" json:"state"`
}

// Property represents one real-estate listing.
type Property struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the short, descriptive name of the property.
	Title string `gorm:"size:255;not null" json:"title"`

	// Type is the property category, e.g. Apartment, House, Commercial.
	Type string `gorm:"size:64;not null" json:"type"`

	// Description is the detailed description of the property.
	Description string `gorm:"type:text;not null" json:"description"`

	// Price is the asking price.
	Price float64 `gorm:"not null" json:"price"`

	// Location is the structured location, stored inline.
	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	// SquareFeet is the total area.
	SquareFeet int `gorm:"not null" json:"squareFeet"`

	// YearBuilt is the year of construction.
	YearBuilt int `gorm:"not null" json:"yearBuilt"`

	// Bedrooms is the number of bedrooms.
	Bedrooms int `gorm:"not null" json:"bedrooms"`

	// CreatedAt is the timestamp when the listing was created.
	// Listings are served newest first.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the listing was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
