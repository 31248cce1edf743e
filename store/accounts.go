package store

import (
	"context"

	"fleetsecure-api/apperr"
	"fleetsecure-api/models"

	"gorm.io/gorm"
)

func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListDrivers returns accounts holding a license number.
func (s *Store) ListDrivers(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.WithContext(ctx).
		Where("license_number <> ''").
		Order("id").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Store) GetAccount(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, asNotFound(err, "account not found")
	}
	return &account, nil
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, asNotFound(err, "account not found")
	}
	return &account, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *Store) SaveAccount(ctx context.Context, account *models.Account) error {
	return s.db.WithContext(ctx).Save(account).Error
}

func (s *Store) SetAccountActive(ctx context.Context, id uint, active bool) error {
	res := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("account not found")
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("account not found")
	}
	return nil
}

// DeleteAccount removes the account and every truck it owns in one
// transaction. No reader can observe the account gone with a truck left, or
// the reverse.
func (s *Store) DeleteAccount(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&models.Truck{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Account{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("account not found")
		}
		return nil
	})
}

// UsernameTaken reports whether another account already uses the username.
func (s *Store) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

// NationalIDTaken reports whether another account already uses the national
// id. Absent national ids are never in conflict.
func (s *Store) NationalIDTaken(ctx context.Context, nationalID string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("national_id = ? AND id <> ?", nationalID, excludeID).
		Count(&count).Error
	return count > 0, err
}
