package store

import (
	"context"

	"fleetsecure-api/apperr"
	"fleetsecure-api/models"
)

func (s *Store) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.db.WithContext(ctx).Preload("Owner").Order("id").Find(&trucks).Error
	if err != nil {
		return nil, err
	}
	return trucks, nil
}

func (s *Store) GetTruck(ctx context.Context, id uint) (*models.Truck, error) {
	var truck models.Truck
	err := s.db.WithContext(ctx).Preload("Owner").First(&truck, id).Error
	if err != nil {
		return nil, asNotFound(err, "truck not found")
	}
	return &truck, nil
}

func (s *Store) CreateTruck(ctx context.Context, truck *models.Truck) error {
	// Omit the association: the owner row is never written through a truck.
	return s.db.WithContext(ctx).Omit("Owner").Create(truck).Error
}

func (s *Store) SaveTruck(ctx context.Context, truck *models.Truck) error {
	return s.db.WithContext(ctx).Omit("Owner").Save(truck).Error
}

func (s *Store) DeleteTruck(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Truck{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("truck not found")
	}
	return nil
}

// TrucksByOwner returns the trucks owned by the account. A well-formed but
// unknown owner id yields an empty slice, not an error.
func (s *Store) TrucksByOwner(ctx context.Context, ownerID uint) ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&trucks).Error
	if err != nil {
		return nil, err
	}
	return trucks, nil
}

// TrucksByYear returns the trucks of a model year; no matches is an empty
// slice, not an error.
func (s *Store) TrucksByYear(ctx context.Context, year int) ([]models.Truck, error) {
	var trucks []models.Truck
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("year = ?", year).
		Order("id").
		Find(&trucks).Error
	if err != nil {
		return nil, err
	}
	return trucks, nil
}
