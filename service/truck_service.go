package service

import (
	"context"

	"github.com/spf13/cast"

	"fleetsecure-api/apperr"
	"fleetsecure-api/authz"
	"fleetsecure-api/models"
	"fleetsecure-api/store"
	"fleetsecure-api/validation"
)

type TruckService struct {
	st *store.Store
}

type TruckInput struct {
	OwnerID     uint
	PlateNumber string
	Model       string
	Year        int
}

// TruckUpdateInput is a partial update; nil fields are left untouched.
type TruckUpdateInput struct {
	OwnerID     *uint
	PlateNumber *string
	Model       *string
	Year        *int
}

func (s *TruckService) List(ctx context.Context, p *authz.Principal) ([]models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionList); err != nil {
		return nil, err
	}
	return s.st.ListTrucks(ctx)
}

func (s *TruckService) Get(ctx context.Context, p *authz.Principal, id uint) (*models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionRead); err != nil {
		return nil, err
	}
	return s.st.GetTruck(ctx, id)
}

func (s *TruckService) Create(ctx context.Context, p *authz.Principal, in TruckInput) (*models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionCreate); err != nil {
		return nil, err
	}
	if err := validation.TruckPayload(in.PlateNumber, in.Year); err != nil {
		return nil, err
	}
	owner, err := s.checkOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	truck := models.Truck{
		OwnerID:     in.OwnerID,
		PlateNumber: in.PlateNumber,
		Model:       in.Model,
		Year:        in.Year,
	}
	if err := s.st.CreateTruck(ctx, &truck); err != nil {
		return nil, err
	}
	truck.Owner = owner
	return &truck, nil
}

func (s *TruckService) Update(ctx context.Context, p *authz.Principal, id uint, in TruckUpdateInput) (*models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionUpdate); err != nil {
		return nil, err
	}
	truck, err := s.st.GetTruck(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-pointing the owner re-runs the active-owner check.
	if in.OwnerID != nil && *in.OwnerID != truck.OwnerID {
		owner, err := s.checkOwner(ctx, *in.OwnerID)
		if err != nil {
			return nil, err
		}
		truck.OwnerID = *in.OwnerID
		truck.Owner = owner
	}
	if in.PlateNumber != nil {
		truck.PlateNumber = *in.PlateNumber
	}
	if in.Model != nil {
		truck.Model = *in.Model
	}
	if in.Year != nil {
		truck.Year = *in.Year
	}
	if err := validation.TruckPayload(truck.PlateNumber, truck.Year); err != nil {
		return nil, err
	}

	if err := s.st.SaveTruck(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) Delete(ctx context.Context, p *authz.Principal, id uint) error {
	if err := authz.CanTruck(p, authz.ActionDelete); err != nil {
		return err
	}
	return s.st.DeleteTruck(ctx, id)
}

// ByOwner is the owner filter. The raw parameter must be present and a
// number; a missing or untyped value is a malformed request, an unknown
// owner id is an empty result.
func (s *TruckService) ByOwner(ctx context.Context, p *authz.Principal, rawOwnerID string) ([]models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionList); err != nil {
		return nil, err
	}
	if rawOwnerID == "" {
		return nil, apperr.Malformed("owner_id parameter is required")
	}
	ownerID, err := cast.ToUintE(rawOwnerID)
	if err != nil {
		return nil, apperr.Malformed("owner_id must be a positive integer")
	}
	return s.st.TrucksByOwner(ctx, ownerID)
}

// ByYear is the model-year filter, with the same parameter contract as
// ByOwner.
func (s *TruckService) ByYear(ctx context.Context, p *authz.Principal, rawYear string) ([]models.Truck, error) {
	if err := authz.CanTruck(p, authz.ActionList); err != nil {
		return nil, err
	}
	if rawYear == "" {
		return nil, apperr.Malformed("year parameter is required")
	}
	year, err := cast.ToIntE(rawYear)
	if err != nil {
		return nil, apperr.Malformed("year must be an integer")
	}
	return s.st.TrucksByYear(ctx, year)
}

// checkOwner resolves the owning account for a truck write and applies the
// active-owner invariant. A missing owner is a field rejection, not a 404:
// the truck is the entity being written.
func (s *TruckService) checkOwner(ctx context.Context, ownerID uint) (*models.Account, error) {
	owner, err := s.st.GetAccount(ctx, ownerID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Validation("owner", "owner account not found")
		}
		return nil, err
	}
	if err := validation.TruckOwner(owner); err != nil {
		return nil, err
	}
	return owner, nil
}
