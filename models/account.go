package models

import (
	"strings"
	"time"
)

// Account is the root identity record: drivers and administrators share one
// shape, and driver status is derived from the license number.
type Account struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Username      string     `json:"username" gorm:"uniqueIndex;not null"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	NationalID    *string    `json:"national_id,omitempty" gorm:"uniqueIndex"`
	Phone         string     `json:"phone,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	IsAdmin       bool       `json:"is_admin"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	LicenseNumber string     `json:"license_number,omitempty"`
	PasswordHash  string     `json:"-" gorm:"not null"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsDriver reports whether the account holds a driving license. This is a
// computed predicate, not a stored role, and is independent of IsActive.
func (a *Account) IsDriver() bool {
	return a.LicenseNumber != ""
}

// FullName joins first and last name, falling back to the username.
func (a *Account) FullName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}
