package handlers

import (
	"net/http"

	"fleetsecure-api/middleware"

	"github.com/gin-gonic/gin"
)

// ListDrivers returns every account holding a license
func (h *Handler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.Drivers.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(drivers))
	for i := range drivers {
		out = append(out, driverJSON(&drivers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "drivers": out})
}

// CurrentDriver returns the caller's driver record, 404 when the caller
// holds no license
func (h *Handler) CurrentDriver(c *gin.Context) {
	driver, err := h.svc.Drivers.Me(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, driverJSON(driver))
}
