package handlers

import (
	"net/http"
	"time"

	"fleetsecure-api/middleware"
	"fleetsecure-api/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username        string     `json:"username" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Password        string     `json:"password" binding:"required,min=6"`
	PasswordConfirm string     `json:"password_confirm" binding:"required"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	NationalID      *string    `json:"national_id"`
	Phone           string     `json:"phone"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	LicenseNumber   string     `json:"license_number"`
	IsAdmin         bool       `json:"is_admin"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. Public; an admin bearer token may also
// use it (via POST /accounts) to create admin accounts.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.svc.Accounts.Register(c.Request.Context(), middleware.Principal(c), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		NationalID:      req.NationalID,
		Phone:           req.Phone,
		DateOfBirth:     req.DateOfBirth,
		LicenseNumber:   req.LicenseNumber,
		IsAdmin:         req.IsAdmin,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	token, err := middleware.GenerateToken(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"account": accountJSON(account),
	})
}

// Login authenticates an account and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.svc.Accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"account": accountJSON(account),
	})
}
