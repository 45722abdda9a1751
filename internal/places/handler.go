package places

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /restaurants/discover
// --------------------------------------------------
func (h *Handler) Discover(c *gin.Context) {
	var req struct {
		Lat          float64  `json:"lat"`
		Lng          float64  `json:"lng"`
		RadiusMeters int      `json:"radius_meters"`
		Cuisines     []string `json:"cuisines"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.RadiusMeters == 0 {
		req.RadiusMeters = 5000
	}

	candidates, reason, err := h.service.Discover(
		c.Request.Context(),
		req.Lat,
		req.Lng,
		req.RadiusMeters,
		req.Cuisines,
	)
	if errors.Is(err, ErrInvalidLocation) || errors.Is(err, ErrInvalidRadius) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "restaurant search failed"})
		return
	}

	// Zero results is a warning, not a failure; the search surface stays
	// usable.
	resp := gin.H{"restaurants": candidates}
	if reason != "" {
		resp["warning"] = reason
	}
	c.JSON(http.StatusOK, resp)
}
