// Package validation holds the write-time invariant checks. Every rejection
// is field-keyed so the caller can correct its input.
package validation

import (
	"fleetsecure-api/apperr"
	"fleetsecure-api/models"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// PasswordPair rejects account creation when the confirmation differs.
func PasswordPair(password, confirm string) error {
	if password != confirm {
		return apperr.Validation("password", "passwords do not match")
	}
	return nil
}

// PasswordChange checks the three-input password change: the old password
// must match the stored hash and the new pair must agree.
func PasswordChange(storedHash, oldPassword, newPassword, newConfirm string) error {
	if !CheckPassword(storedHash, oldPassword) {
		return apperr.Validation("old_password", "incorrect current password")
	}
	if newPassword != newConfirm {
		return apperr.Validation("new_password", "passwords do not match")
	}
	return nil
}

// TruckOwner rejects a truck write whose owning account is inactive. Runs on
// create and on any update that re-points the owner.
func TruckOwner(owner *models.Account) error {
	if !owner.IsActive {
		return apperr.Validation("owner", "owner account is not active")
	}
	return nil
}

// TruckPayload checks the truck fields themselves.
func TruckPayload(plateNumber string, year int) error {
	if plateNumber == "" {
		return apperr.Validation("plate_number", "plate number is required")
	}
	if year <= 0 {
		return apperr.Validation("year", "year must be a positive integer")
	}
	return nil
}
