package recommend

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shrvya4/Glucose-Guardian/internal/extract"
	"github.com/shrvya4/Glucose-Guardian/internal/glucose"
	"github.com/shrvya4/Glucose-Guardian/internal/menu"
)

type Handler struct {
	pipeline *menu.Pipeline
	matcher  *Matcher
	profiles glucose.Repository
}

func NewHandler(pipeline *menu.Pipeline, matcher *Matcher, profiles glucose.Repository) *Handler {
	return &Handler{
		pipeline: pipeline,
		matcher:  matcher,
		profiles: profiles,
	}
}

// loadSummary fetches the caller's stored glucose narrative; every analysis
// endpoint needs one.
func (h *Handler) loadSummary(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}

	profile, err := h.profiles.Find(c.Request.Context(), userID)
	if errors.Is(err, glucose.ErrProfileNotFound) {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error": "analyze your CGM report first to build a glucose profile",
		})
		return "", false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return "", false
	}

	return profile.Summary, true
}

// --------------------------------------------------
// POST /restaurants/analyze
// --------------------------------------------------
func (h *Handler) AnalyzeRestaurant(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		PlaceID string `json:"place_id"`
		Cuisine string `json:"cuisine"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant name is required"})
		return
	}

	summary, ok := h.loadSummary(c)
	if !ok {
		return
	}

	result, err := h.pipeline.AcquireMenu(c.Request.Context(), menu.Request{
		Name:        req.Name,
		Address:     req.Address,
		PlaceID:     req.PlaceID,
		CuisineHint: req.Cuisine,
	})
	if err != nil {
		// Only the terminal simulation failing lands here.
		log.Printf("MENU_UNAVAILABLE restaurant=%q err=%v", req.Name, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu unavailable for this restaurant"})
		return
	}

	rec, err := h.matcher.Match(c.Request.Context(), summary, result.Dishes)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu":           result,
		"recommendation": rec,
	})
}

// --------------------------------------------------
// POST /menus/analyze  (uploaded menu document)
// --------------------------------------------------
func (h *Handler) AnalyzeUploadedMenu(c *gin.Context) {
	summary, ok := h.loadSummary(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	kind, err := extract.KindForFilename(fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload a PDF or image (png/jpg)"})
		return
	}

	tmp, err := os.CreateTemp("", "menu-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	src, err := fileHeader.Open()
	if err != nil {
		tmp.Close()
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	_, copyErr := io.Copy(tmp, src)
	src.Close()
	tmp.Close()
	if copyErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	menuText, err := extract.FromFile(tmpPath, kind)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	dishes := dishesFromText(menuText)
	if len(dishes) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no menu items found in document"})
		return
	}

	rec, err := h.matcher.Match(c.Request.Context(), summary, dishes)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dishes":         dishes,
		"recommendation": rec,
	})
}

// dishesFromText turns extracted menu text into candidate dish lines.
func dishesFromText(text string) []string {
	var dishes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 && len(line) < 200 {
			dishes = append(dishes, line)
		}
	}
	return dishes
}
