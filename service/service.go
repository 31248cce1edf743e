// Package service exposes the registry's operations to the transport layer.
// Each call takes the authenticated principal (nil when unauthenticated),
// runs authorization then validation, and finally hits the store.
package service

import (
	"fleetsecure-api/store"
)

type Services struct {
	Accounts *AccountService
	Trucks   *TruckService
	Drivers  *DriverService
}

func New(st *store.Store) *Services {
	return &Services{
		Accounts: &AccountService{st: st},
		Trucks:   &TruckService{st: st},
		Drivers:  &DriverService{st: st},
	}
}
