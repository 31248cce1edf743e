package service

import (
	"context"
	"strconv"
	"testing"

	"fleetsecure-api/apperr"
)

func TestCreateTruckRequiresAuthentication(t *testing.T) {
	svc := newTestServices(t)
	owner, _ := register(t, svc, "driver1", "DRV-001")

	_, err := svc.Trucks.Create(context.Background(), nil, TruckInput{
		OwnerID: owner.ID, PlateNumber: "ABC-1234", Model: "Volvo FH16", Year: 2022,
	})
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("unauthenticated create must be forbidden, got %v", err)
	}
}

func TestCreateTruckForInactiveOwnerRejected(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	_, admin := registerAdmin(t, svc, "admin")
	owner, _ := register(t, svc, "driver1", "DRV-001")

	if err := svc.Accounts.Deactivate(ctx, admin, owner.ID); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Trucks.Create(ctx, admin, TruckInput{
		OwnerID: owner.ID, PlateNumber: "ABC-123", Model: "Iveco Daily", Year: 2021,
	})
	if apperr.KindOf(err) != apperr.KindValidation || apperr.FieldsOf(err)["owner"] == "" {
		t.Fatalf("inactive owner must reject on owner field, got %v", err)
	}
}

func TestCreateTruckForMissingOwnerRejected(t *testing.T) {
	svc := newTestServices(t)
	_, caller := register(t, svc, "driver1", "DRV-001")

	_, err := svc.Trucks.Create(context.Background(), caller, TruckInput{
		OwnerID: 99999, PlateNumber: "ABC-123", Model: "Iveco Daily", Year: 2021,
	})
	if apperr.KindOf(err) != apperr.KindValidation || apperr.FieldsOf(err)["owner"] == "" {
		t.Fatalf("missing owner must reject on owner field, got %v", err)
	}
}

func TestUpdateTruckRepointToInactiveOwnerRejected(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	_, admin := registerAdmin(t, svc, "admin")
	owner, callerP := register(t, svc, "driver1", "DRV-001")
	inactive, _ := register(t, svc, "driver2", "DRV-002")

	truck, err := svc.Trucks.Create(ctx, callerP, TruckInput{
		OwnerID: owner.ID, PlateNumber: "ABC-1234", Model: "Volvo FH16", Year: 2022,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Accounts.Deactivate(ctx, admin, inactive.ID); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Trucks.Update(ctx, callerP, truck.ID, TruckUpdateInput{OwnerID: uintPtr(inactive.ID)})
	if apperr.KindOf(err) != apperr.KindValidation || apperr.FieldsOf(err)["owner"] == "" {
		t.Fatalf("re-point to inactive owner must reject on owner, got %v", err)
	}

	// Updates that leave the owner alone are unaffected by the owner's
	// current flag only when the reference does not change; changing other
	// fields still succeeds for an active owner.
	updated, err := svc.Trucks.Update(ctx, callerP, truck.ID, TruckUpdateInput{
		PlateNumber: strPtr("UPDATED"), Year: intPtr(2025),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PlateNumber != "UPDATED" || updated.Year != 2025 {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestTruckFiltersParameterContract(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	owner, caller := register(t, svc, "driver1", "DRV-001")
	if _, err := svc.Trucks.Create(ctx, caller, TruckInput{
		OwnerID: owner.ID, PlateNumber: "ABC-1234", Model: "Volvo FH16", Year: 2022,
	}); err != nil {
		t.Fatal(err)
	}

	// Missing parameters are malformed requests, not validation errors.
	if _, err := svc.Trucks.ByOwner(ctx, caller, ""); apperr.KindOf(err) != apperr.KindMalformed {
		t.Fatalf("missing owner_id must be malformed, got %v", err)
	}
	if _, err := svc.Trucks.ByYear(ctx, caller, ""); apperr.KindOf(err) != apperr.KindMalformed {
		t.Fatalf("missing year must be malformed, got %v", err)
	}
	if _, err := svc.Trucks.ByOwner(ctx, caller, "not-a-number"); apperr.KindOf(err) != apperr.KindMalformed {
		t.Fatalf("untyped owner_id must be malformed, got %v", err)
	}
	if _, err := svc.Trucks.ByYear(ctx, caller, "soon"); apperr.KindOf(err) != apperr.KindMalformed {
		t.Fatalf("untyped year must be malformed, got %v", err)
	}

	// Well-formed but non-matching values yield empty lists with success.
	empty, err := svc.Trucks.ByOwner(ctx, caller, "99999")
	if err != nil || len(empty) != 0 {
		t.Fatalf("unknown owner must yield empty list: %v %v", empty, err)
	}
	empty, err = svc.Trucks.ByYear(ctx, caller, "2050")
	if err != nil || len(empty) != 0 {
		t.Fatalf("unmatched year must yield empty list: %v %v", empty, err)
	}

	// Matching values return the trucks.
	trucks, err := svc.Trucks.ByOwner(ctx, caller, strconv.Itoa(int(owner.ID)))
	if err != nil || len(trucks) != 1 {
		t.Fatalf("by owner: %v %v", trucks, err)
	}
	trucks, err = svc.Trucks.ByYear(ctx, caller, "2022")
	if err != nil || len(trucks) != 1 {
		t.Fatalf("by year: %v %v", trucks, err)
	}
}

func TestTruckPayloadValidation(t *testing.T) {
	svc := newTestServices(t)
	owner, caller := register(t, svc, "driver1", "DRV-001")

	_, err := svc.Trucks.Create(context.Background(), caller, TruckInput{
		OwnerID: owner.ID, PlateNumber: "ABC-1234", Model: "Volvo FH16", Year: -5,
	})
	if apperr.KindOf(err) != apperr.KindValidation || apperr.FieldsOf(err)["year"] == "" {
		t.Fatalf("negative year must reject on year, got %v", err)
	}
}

func TestDriverLifecycleEndToEnd(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	_, admin := registerAdmin(t, svc, "admin")

	driver, driverP := register(t, svc, "driver1", "ABC12345")
	if !driver.IsDriver() {
		t.Fatal("licensed account must be a driver")
	}

	truck, err := svc.Trucks.Create(ctx, driverP, TruckInput{
		OwnerID: driver.ID, PlateNumber: "XYZ-1234", Model: "Scania R450", Year: 2023,
	})
	if err != nil {
		t.Fatalf("create truck: %v", err)
	}

	if err := svc.Accounts.Deactivate(ctx, admin, driver.ID); err != nil {
		t.Fatal(err)
	}

	// Once the owner is inactive, new trucks and owner re-points are
	// rejected.
	_, err = svc.Trucks.Create(ctx, admin, TruckInput{
		OwnerID: driver.ID, PlateNumber: "XYZ-5678", Model: "Scania R450", Year: 2024,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("create for inactive owner must be rejected, got %v", err)
	}

	// Deleting the account removes the truck atomically.
	if err := svc.Accounts.Delete(ctx, admin, driver.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Trucks.Get(ctx, admin, truck.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("truck survived owner delete: %v", err)
	}
}
