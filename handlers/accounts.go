package handlers

import (
	"net/http"
	"time"

	"fleetsecure-api/middleware"
	"fleetsecure-api/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type accountUpdateRequest struct {
	Email         *string    `json:"email"`
	FirstName     *string    `json:"first_name"`
	LastName      *string    `json:"last_name"`
	NationalID    *string    `json:"national_id"`
	Phone         *string    `json:"phone"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	LicenseNumber *string    `json:"license_number"`
	IsAdmin       *bool      `json:"is_admin"`
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required,min=6"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := cast.ToUintE(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// ListAccounts returns every account — admin only
func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.svc.Accounts.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(accounts))
	for i := range accounts {
		out = append(out, accountJSON(&accounts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "accounts": out})
}

func (h *Handler) GetAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	account, err := h.svc.Accounts.Get(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, accountJSON(account))
}

// CurrentAccount returns the caller's own account
func (h *Handler) CurrentAccount(c *gin.Context) {
	account, err := h.svc.Accounts.Me(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, accountJSON(account))
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req accountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := h.svc.Accounts.Update(c.Request.Context(), middleware.Principal(c), id, service.AccountUpdateInput{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		NationalID:    req.NationalID,
		Phone:         req.Phone,
		DateOfBirth:   req.DateOfBirth,
		LicenseNumber: req.LicenseNumber,
		IsAdmin:       req.IsAdmin,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, accountJSON(account))
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Accounts.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ActivateAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Accounts.Activate(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Account activated"})
}

func (h *Handler) DeactivateAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Accounts.Deactivate(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Account deactivated"})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.svc.Accounts.ChangePassword(c.Request.Context(), middleware.Principal(c), id,
		req.OldPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Password changed successfully"})
}
