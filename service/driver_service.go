package service

import (
	"context"

	"fleetsecure-api/apperr"
	"fleetsecure-api/authz"
	"fleetsecure-api/models"
	"fleetsecure-api/store"
)

// DriverService is a read-only view over accounts that hold a license.
type DriverService struct {
	st *store.Store
}

func (s *DriverService) List(ctx context.Context, p *authz.Principal) ([]models.Account, error) {
	if err := authz.CanDriver(p, authz.ActionList); err != nil {
		return nil, err
	}
	return s.st.ListDrivers(ctx)
}

// Me returns the caller's driver record. An account without a license has no
// driver record, which is an absence, not a denial.
func (s *DriverService) Me(ctx context.Context, p *authz.Principal) (*models.Account, error) {
	if err := authz.CanDriver(p, authz.ActionMe); err != nil {
		return nil, err
	}
	account, err := s.st.GetAccount(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !account.IsDriver() {
		return nil, apperr.NotFound("the current account is not a driver")
	}
	return account, nil
}
