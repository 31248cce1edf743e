package handlers

import (
	"net/http"

	"fleetsecure-api/middleware"
	"fleetsecure-api/service"

	"github.com/gin-gonic/gin"
)

type truckCreateRequest struct {
	OwnerID     uint   `json:"owner_id" binding:"required"`
	PlateNumber string `json:"plate_number" binding:"required"`
	Model       string `json:"model"`
	Year        int    `json:"year" binding:"required"`
}

type truckUpdateRequest struct {
	OwnerID     *uint   `json:"owner_id"`
	PlateNumber *string `json:"plate_number"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
}

func (h *Handler) ListTrucks(c *gin.Context) {
	trucks, err := h.svc.Trucks.List(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(trucks), "trucks": trucksJSON(trucks)})
}

func (h *Handler) GetTruck(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	truck, err := h.svc.Trucks.Get(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, truckJSON(truck))
}

func (h *Handler) CreateTruck(c *gin.Context) {
	var req truckCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	truck, err := h.svc.Trucks.Create(c.Request.Context(), middleware.Principal(c), service.TruckInput{
		OwnerID:     req.OwnerID,
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Year:        req.Year,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, truckJSON(truck))
}

func (h *Handler) UpdateTruck(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req truckUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	truck, err := h.svc.Trucks.Update(c.Request.Context(), middleware.Principal(c), id, service.TruckUpdateInput{
		OwnerID:     req.OwnerID,
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Year:        req.Year,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, truckJSON(truck))
}

func (h *Handler) DeleteTruck(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Trucks.Delete(c.Request.Context(), middleware.Principal(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TrucksByOwner filters trucks by owning account; owner_id is required
func (h *Handler) TrucksByOwner(c *gin.Context) {
	trucks, err := h.svc.Trucks.ByOwner(c.Request.Context(), middleware.Principal(c), c.Query("owner_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(trucks), "trucks": trucksJSON(trucks)})
}

// TrucksByYear filters trucks by model year; year is required
func (h *Handler) TrucksByYear(c *gin.Context) {
	trucks, err := h.svc.Trucks.ByYear(c.Request.Context(), middleware.Principal(c), c.Query("year"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(trucks), "trucks": trucksJSON(trucks)})
}
