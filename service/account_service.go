package service

import (
	"context"
	"time"

	"fleetsecure-api/apperr"
	"fleetsecure-api/authz"
	"fleetsecure-api/models"
	"fleetsecure-api/store"
	"fleetsecure-api/validation"
)

type AccountService struct {
	st *store.Store
}

// RegisterInput carries the self-registration (or admin creation) payload.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	NationalID      *string
	Phone           string
	DateOfBirth     *time.Time
	LicenseNumber   string
	IsAdmin         bool
}

// AccountUpdateInput is a partial update; nil fields are left untouched.
type AccountUpdateInput struct {
	Email         *string
	FirstName     *string
	LastName      *string
	NationalID    *string
	Phone         *string
	DateOfBirth   *time.Time
	LicenseNumber *string
	IsAdmin       *bool
}

func (s *AccountService) List(ctx context.Context, p *authz.Principal) ([]models.Account, error) {
	if err := authz.CanAccount(p, authz.ActionList, 0); err != nil {
		return nil, err
	}
	return s.st.ListAccounts(ctx)
}

func (s *AccountService) Get(ctx context.Context, p *authz.Principal, id uint) (*models.Account, error) {
	if err := authz.CanAccount(p, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.st.GetAccount(ctx, id)
}

// Me returns the principal's own account record.
func (s *AccountService) Me(ctx context.Context, p *authz.Principal) (*models.Account, error) {
	if err := authz.CanAccount(p, authz.ActionMe, 0); err != nil {
		return nil, err
	}
	return s.st.GetAccount(ctx, p.ID)
}

// Register creates an account. Open to unauthenticated callers; the is_admin
// flag in the payload is honored only when the caller is an admin.
func (s *AccountService) Register(ctx context.Context, p *authz.Principal, in RegisterInput) (*models.Account, error) {
	if err := authz.CanAccount(p, authz.ActionCreate, 0); err != nil {
		return nil, err
	}
	if err := validation.PasswordPair(in.Password, in.PasswordConfirm); err != nil {
		return nil, err
	}
	if taken, err := s.st.UsernameTaken(ctx, in.Username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("username", "username already in use")
	}
	if in.NationalID != nil {
		if taken, err := s.st.NationalIDTaken(ctx, *in.NationalID, 0); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Conflict("national_id", "national id already in use")
		}
	}

	hash, err := validation.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	account := models.Account{
		Username:      in.Username,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		NationalID:    in.NationalID,
		Phone:         in.Phone,
		DateOfBirth:   in.DateOfBirth,
		LicenseNumber: in.LicenseNumber,
		IsAdmin:       in.IsAdmin && p != nil && p.IsAdmin,
		IsActive:      true,
		PasswordHash:  hash,
	}
	if err := s.st.CreateAccount(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Update applies a partial update to the target account. Self or admin only;
// only an admin may grant or revoke is_admin.
func (s *AccountService) Update(ctx context.Context, p *authz.Principal, id uint, in AccountUpdateInput) (*models.Account, error) {
	if err := authz.CanAccount(p, authz.ActionUpdate, id); err != nil {
		return nil, err
	}
	account, err := s.st.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NationalID != nil {
		if taken, err := s.st.NationalIDTaken(ctx, *in.NationalID, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Conflict("national_id", "national id already in use")
		}
		account.NationalID = in.NationalID
	}
	if in.Email != nil {
		account.Email = *in.Email
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
	}
	if in.DateOfBirth != nil {
		account.DateOfBirth = in.DateOfBirth
	}
	if in.LicenseNumber != nil {
		account.LicenseNumber = *in.LicenseNumber
	}
	if in.IsAdmin != nil && p.IsAdmin {
		account.IsAdmin = *in.IsAdmin
	}

	if err := s.st.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes the account and cascades to its trucks.
func (s *AccountService) Delete(ctx context.Context, p *authz.Principal, id uint) error {
	if err := authz.CanAccount(p, authz.ActionDelete, id); err != nil {
		return err
	}
	return s.st.DeleteAccount(ctx, id)
}

func (s *AccountService) Activate(ctx context.Context, p *authz.Principal, id uint) error {
	if err := authz.CanAccount(p, authz.ActionActivate, id); err != nil {
		return err
	}
	return s.st.SetAccountActive(ctx, id, true)
}

func (s *AccountService) Deactivate(ctx context.Context, p *authz.Principal, id uint) error {
	if err := authz.CanAccount(p, authz.ActionDeactivate, id); err != nil {
		return err
	}
	return s.st.SetAccountActive(ctx, id, false)
}

// ChangePassword replaces the stored hash after checking the old password
// and the new pair. Previously issued tokens stay valid until they expire.
func (s *AccountService) ChangePassword(ctx context.Context, p *authz.Principal, id uint, oldPassword, newPassword, newConfirm string) error {
	if err := authz.CanAccount(p, authz.ActionChangePassword, id); err != nil {
		return err
	}
	account, err := s.st.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if err := validation.PasswordChange(account.PasswordHash, oldPassword, newPassword, newConfirm); err != nil {
		return err
	}
	hash, err := validation.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.st.UpdatePassword(ctx, id, hash)
}

// Authenticate verifies a username/password pair for login. Inactive
// accounts cannot authenticate.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.st.GetAccountByUsername(ctx, username)
	if err != nil || !validation.CheckPassword(account.PasswordHash, password) {
		return nil, apperr.Forbidden("invalid username or password")
	}
	if !account.IsActive {
		return nil, apperr.Forbidden("account is inactive")
	}
	return account, nil
}
