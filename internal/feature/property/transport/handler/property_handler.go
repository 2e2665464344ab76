// Package handler provides the HTTP handlers for the property feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/transport/http/dto"
	"estate_backend/internal/feature/property/usecase"
)

// PropertyUsecase defines the listing operations the handlers depend on.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type PropertyUsecase interface {
	List(ctx context.Context) ([]entity.Property, error)
	Get(ctx context.Context, id uint) (*entity.Property, error)
	Create(ctx context.Context, p *entity.Property) (*entity.Property, error)
	Update(ctx context.Context, id uint, in *entity.Property) (*entity.Property, error)
	Delete(ctx context.Context, id uint) error
}

// PropertyHandler handles the HTTP requests of the listing endpoints.
// The mutating handlers run behind the auth gate; List and Get do not.
type PropertyHandler struct {
	props PropertyUsecase
}

// NewPropertyHandler creates a new PropertyHandler with the injected usecase.
func NewPropertyHandler(props PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{props: props}
}

// List handles GET /api/properties and returns all listings newest first.
func (h *PropertyHandler) List(c *gin.Context) {
	props, err := h.props.List(c.Request.Context())
	if err != nil {
		slog.Error("property list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if props == nil {
		props = []entity.Property{}
	}
	c.JSON(http.StatusOK, props)
}

// Get handles GET /api/properties/:propertyId.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}
	p, err := h.props.Get(c.Request.Context(), id)
	if err != nil {
		respondPropertyError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.PropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("property create rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create property"})
		return
	}
	p, err := h.props.Create(c.Request.Context(), toEntity(&req))
	if err != nil {
		slog.Error("property create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/properties/:propertyId and replaces the listing fields.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}
	var req dto.PropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("property update rejected", "error", err, "property_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update property"})
		return
	}
	p, err := h.props.Update(c.Request.Context(), id, toEntity(&req))
	if err != nil {
		respondPropertyError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/properties/:propertyId.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}
	if err := h.props.Delete(c.Request.Context(), id); err != nil {
		respondPropertyError(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}

// parsePropertyID reads the :propertyId path parameter. On a non-numeric
// value it answers 400 and reports false.
func parsePropertyID(c *gin.Context) (uint, bool) {
	raw := c.Param("propertyId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property ID"})
		return 0, false
	}
	return uint(id), true
}

// respondPropertyError maps a usecase failure to its HTTP response.
func respondPropertyError(c *gin.Context, err error, id uint) {
	if errors.Is(err, usecase.ErrPropertyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	slog.Error("property operation failed", "error", err, "property_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// toEntity converts a request body to a domain entity.
func toEntity(req *dto.PropertyReq) *entity.Property {
	return &entity.Property{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
		Location: entity.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
		},
		SquareFeet: req.SquareFeet,
		YearBuilt:  req.YearBuilt,
		Bedrooms:   req.Bedrooms,
	}
}
