package handlers

import (
	"fleetsecure-api/apperr"
	"fleetsecure-api/models"
	"fleetsecure-api/service"

	"github.com/gin-gonic/gin"
)

// Handler is the thin transport over the service layer: bind, call, map the
// error kind to a status.
type Handler struct {
	svc *service.Services
}

func New(svc *service.Services) *Handler {
	return &Handler{svc: svc}
}

func respondErr(c *gin.Context, err error) {
	status := apperr.Status(err)
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		c.JSON(status, gin.H{"errors": fields})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func accountJSON(a *models.Account) gin.H {
	return gin.H{
		"id":             a.ID,
		"username":       a.Username,
		"email":          a.Email,
		"first_name":     a.FirstName,
		"last_name":      a.LastName,
		"full_name":      a.FullName(),
		"national_id":    a.NationalID,
		"phone":          a.Phone,
		"date_of_birth":  a.DateOfBirth,
		"is_active":      a.IsActive,
		"is_admin":       a.IsAdmin,
		"is_driver":      a.IsDriver(),
		"license_number": a.LicenseNumber,
	}
}

func driverJSON(a *models.Account) gin.H {
	return gin.H{
		"id":             a.ID,
		"username":       a.Username,
		"full_name":      a.FullName(),
		"license_number": a.LicenseNumber,
		"is_active":      a.IsActive,
	}
}

func truckJSON(t *models.Truck) gin.H {
	out := gin.H{
		"id":           t.ID,
		"plate_number": t.PlateNumber,
		"model":        t.Model,
		"year":         t.Year,
		"owner_id":     t.OwnerID,
	}
	if t.Owner != nil {
		out["owner_details"] = accountJSON(t.Owner)
	}
	return out
}

func trucksJSON(trucks []models.Truck) []gin.H {
	out := make([]gin.H, 0, len(trucks))
	for i := range trucks {
		out = append(out, truckJSON(&trucks[i]))
	}
	return out
}
