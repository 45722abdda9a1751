package glucose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shrvya4/Glucose-Guardian/internal/extract"
)

// Archiver stores the original uploaded document. Best effort: archive
// failures never fail the analysis.
type Archiver interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Handler struct {
	summarizer *Summarizer
	repo       Repository
	archive    Archiver
}

func NewHandler(summarizer *Summarizer, repo Repository, archive Archiver) *Handler {
	return &Handler{
		summarizer: summarizer,
		repo:       repo,
		archive:    archive,
	}
}

// --------------------------------------------------
// POST /reports/analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
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

	// Spool the upload to a temp file; removed on every path.
	tmp, err := os.CreateTemp("", "cgm-*"+filepath.Ext(fileHeader.Filename))
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

	rawText, err := extract.FromFile(tmpPath, kind)
	if err != nil {
		log.Printf("REPORT_EXTRACT_FAILED user=%s err=%v", userID, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.summarizer.Summarize(
		c.Request.Context(),
		extract.CleanReportText(rawText),
	)
	if err != nil {
		var sumErr *SummarizationError
		if errors.As(err, &sumErr) {
			log.Printf("REPORT_SUMMARIZE_FAILED user=%s stage=%s err=%v", userID, sumErr.Stage, sumErr.Err)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	reportKey := h.archiveReport(c.Request.Context(), userID, tmpPath, fileHeader.Filename)

	stored := StoredProfile{
		Summary:   profile.Summary,
		ReportKey: reportKey,
	}
	if err := h.repo.Upsert(c.Request.Context(), userID, stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	log.Printf("REPORT_ANALYZED user=%s meals=%d", userID, len(profile.Meals))
	c.JSON(http.StatusOK, profile)
}

// archiveReport uploads the original document to object storage.
func (h *Handler) archiveReport(ctx context.Context, userID, path, filename string) string {
	if h.archive == nil {
		return ""
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("reports/%s/%s%s", userID, uuid.New().String(), ext)

	contentType := "application/pdf"
	if ext != ".pdf" {
		contentType = "image/" + strings.TrimPrefix(ext, ".")
	}

	if _, err := h.archive.Upload(ctx, key, f, contentType); err != nil {
		log.Printf("REPORT_ARCHIVE_FAILED user=%s err=%v", userID, err)
		return ""
	}

	return key
}

// --------------------------------------------------
// GET /reports/profile
// --------------------------------------------------
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.repo.Find(c.Request.Context(), userID)
	if errors.Is(err, ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no glucose profile yet, analyze a CGM report first"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
