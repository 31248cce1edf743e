package service

import (
	"context"
	"testing"

	"fleetsecure-api/authz"
	"fleetsecure-api/models"
	"fleetsecure-api/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Account{}, &models.Truck{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(store.New(db))
}

// register creates an account through the public registration path and
// returns it together with its principal.
func register(t *testing.T, svc *Services, username, license string) (*models.Account, *authz.Principal) {
	t.Helper()
	account, err := svc.Accounts.Register(context.Background(), nil, RegisterInput{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "testpass123",
		PasswordConfirm: "testpass123",
		LicenseNumber:   license,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return account, principalFor(account)
}

// registerAdmin seeds an admin by promoting a registered account directly in
// the store.
func registerAdmin(t *testing.T, svc *Services, username string) (*models.Account, *authz.Principal) {
	t.Helper()
	account, _ := register(t, svc, username, "")
	account.IsAdmin = true
	if err := svc.Accounts.st.SaveAccount(context.Background(), account); err != nil {
		t.Fatalf("promote %s: %v", username, err)
	}
	return account, principalFor(account)
}

func principalFor(a *models.Account) *authz.Principal {
	return &authz.Principal{ID: a.ID, IsAdmin: a.IsAdmin, IsActive: a.IsActive}
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func intPtr(i int) *int { return &i }
