package models

import "time"

// Truck is owned by exactly one Account and is deleted with it.
type Truck struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Owner       *Account  `json:"owner_details,omitempty" gorm:"foreignKey:OwnerID"`
	PlateNumber string    `json:"plate_number" gorm:"not null"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
