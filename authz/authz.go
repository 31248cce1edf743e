// Package authz holds the pure authorization engine: given a principal, an
// action and a target, it answers allow or deny. It never touches storage.
package authz

import (
	"fleetsecure-api/apperr"
)

// Principal is the authenticated identity executing a request, produced by
// the transport layer from a verified bearer token.
type Principal struct {
	ID       uint
	IsAdmin  bool
	IsActive bool
}

// Action names one operation a principal may attempt on a resource.
type Action string

const (
	ActionList           Action = "list"
	ActionRead           Action = "read"
	ActionCreate         Action = "create"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionActivate       Action = "activate"
	ActionDeactivate     Action = "deactivate"
	ActionChangePassword Action = "change_password"
	ActionMe             Action = "me"
)

// Policy decides whether a principal may act on the entity with targetID.
// A nil principal means the request is unauthenticated.
type Policy func(p *Principal, targetID uint) bool

func Anyone(*Principal, uint) bool { return true }

func Authenticated(p *Principal, _ uint) bool { return p != nil }

func AdminOnly(p *Principal, _ uint) bool { return p != nil && p.IsAdmin }

func SelfOrAdmin(p *Principal, targetID uint) bool {
	return p != nil && (p.IsAdmin || p.ID == targetID)
}

// accountPolicies is the authoritative permission table for account actions.
// Listing is admin-only and reported as forbidden, never not-found.
// Self-registration is open. Only an admin may toggle the active flag, even
// on their own account.
var accountPolicies = map[Action]Policy{
	ActionList:           AdminOnly,
	ActionCreate:         Anyone,
	ActionRead:           SelfOrAdmin,
	ActionUpdate:         SelfOrAdmin,
	ActionDelete:         SelfOrAdmin,
	ActionActivate:       AdminOnly,
	ActionDeactivate:     AdminOnly,
	ActionChangePassword: SelfOrAdmin,
	ActionMe:             Authenticated,
}

// truckPolicies: truck access is deliberately open to every authenticated
// account. Ownership is not enforced on trucks, unlike account records.
var truckPolicies = map[Action]Policy{
	ActionList:   Authenticated,
	ActionRead:   Authenticated,
	ActionCreate: Authenticated,
	ActionUpdate: Authenticated,
	ActionDelete: Authenticated,
}

// driverPolicies covers the read-only driver view over accounts. Absence of
// a driver record behind "me" is a not-found concern for the service, not a
// denial here.
var driverPolicies = map[Action]Policy{
	ActionList: Authenticated,
	ActionRead: Authenticated,
	ActionMe:   Authenticated,
}

func CanAccount(p *Principal, action Action, targetID uint) error {
	return decide(accountPolicies, p, action, targetID)
}

func CanTruck(p *Principal, action Action) error {
	return decide(truckPolicies, p, action, 0)
}

func CanDriver(p *Principal, action Action) error {
	return decide(driverPolicies, p, action, 0)
}

func decide(table map[Action]Policy, p *Principal, action Action, targetID uint) error {
	policy, ok := table[action]
	if !ok || !policy(p, targetID) {
		return apperr.Forbidden("you do not have permission to perform this action")
	}
	return nil
}
