// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Address holds the structured postal address submitted at signup.
// It is informational only and never affects auth decisions.
type Address struct {
	Street  string `gorm:"size:255;not null" json:"street"`
	City    string `gorm:"size:255;not null" json:"city"`
	State   string `gorm:"size:255;not null" json:"state"`
	ZipCode string `gorm:"size:32;not null" json:"zipCode"`
}

// User represents a registered account in the system.
// The email is the natural key; at most one record may exist per email.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the case-normalized address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext is never stored, and the hash is never serialized to clients.
	Password string `gorm:"size:255;not null" json:"-"`

	// PhoneNumber is the contact number submitted at signup.
	PhoneNumber string `gorm:"size:32;not null" json:"phoneNumber"`

	// Gender is the self-reported gender field.
	Gender string `gorm:"size:32;not null" json:"gender"`

	// DateOfBirth is the submitted birth date in YYYY-MM-DD form.
	DateOfBirth string `gorm:"size:32;not null" json:"dateOfBirth"`

	// Address is the structured postal address, stored inline.
	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
