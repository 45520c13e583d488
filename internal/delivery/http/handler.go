package http

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/productlens/backend/config"
	"github.com/productlens/backend/internal/domain"
	"github.com/productlens/backend/internal/usecase"
)

// Error categories surfaced to the browser UI
const (
	CategoryInvalidBarcode      = "invalid_barcode"
	CategoryProductNotFound     = "product_not_found"
	CategoryUpstreamUnavailable = "upstream_unavailable"
	CategoryRateLimited         = "rate_limited"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookupService *usecase.LookupService
	uploadCfg     config.UploadConfig
}

// NewHandler creates a new HTTP handler
func NewHandler(lookupService *usecase.LookupService, uploadCfg config.UploadConfig) *Handler {
	return &Handler{
		lookupService: lookupService,
		uploadCfg:     uploadCfg,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "productlens-backend",
		"version": "1.0.0",
	})
}

// ScanBarcode handles barcode lookup requests. The barcode may come
// from the camera scanner or manual entry; both are treated identically.
func (h *Handler) ScanBarcode(c *gin.Context) {
	var req domain.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, CategoryInvalidBarcode, "no barcode provided")
		return
	}

	product, err := h.lookupService.Lookup(c.Request.Context(), req.Barcode)
	if err != nil {
		status, category := classifyLookupError(err)
		errorResponse(c, status, category, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// UploadImage accepts a barcode photo for client-side handling. The
// file is stored as-is; no barcode extraction or image processing
// happens server-side.
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, CategoryInvalidBarcode, "no file uploaded")
		return
	}

	if file.Size > h.uploadCfg.MaxSizeMB*1024*1024 {
		errorResponse(c, http.StatusRequestEntityTooLarge, CategoryInvalidBarcode,
			"file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !h.extensionAllowed(ext) {
		errorResponse(c, http.StatusBadRequest, CategoryInvalidBarcode,
			"invalid file type")
		return
	}

	// Drop any path components a client may have smuggled into the name
	filename := filepath.Base(file.Filename)
	dst := filepath.Join(h.uploadCfg.Dir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("[HTTP] Failed to save upload %q: %v", filename, err)
		errorResponse(c, http.StatusInternalServerError, CategoryUpstreamUnavailable,
			"error saving file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": filename,
		"note":     "barcode detection runs in the browser; the server stores the image only",
	})
}

// extensionAllowed checks the upload extension allowlist
func (h *Handler) extensionAllowed(ext string) bool {
	for _, allowed := range h.uploadCfg.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

// classifyLookupError maps a lookup error to its HTTP status and
// user-facing category. Unrecognized errors are reported as upstream
// unavailability rather than leaking internals.
func classifyLookupError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidBarcode):
		return http.StatusBadRequest, CategoryInvalidBarcode
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, CategoryProductNotFound
	default:
		return http.StatusServiceUnavailable, CategoryUpstreamUnavailable
	}
}

// errorResponse writes the structured error shape consumed by the UI
func errorResponse(c *gin.Context, status int, category, message string) {
	c.JSON(status, gin.H{
		"success":  false,
		"category": category,
		"error":    message,
	})
}
