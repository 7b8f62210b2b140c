package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fixmarkt/services/storage"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	reportFolder = "reports"
	reportURLTTL = 15 * time.Minute
)

// StorageHandler serves inspection report uploads and signed download URLs.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadReportHandler accepts a multipart "file" field, stores it and
// returns the public ID the client attaches to a repair request.
func (h *StorageHandler) UploadReportHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "file storage is not configured", "")
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		zap.L().Error("failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store file", "")
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, reportFolder)
	if err != nil {
		zap.L().Error("report upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store file", "")
		return
	}
	// Strip the folder so report_id stays a single opaque path segment.
	c.JSON(http.StatusCreated, gin.H{"report_id": strings.TrimPrefix(publicID, reportFolder+"/")})
}

// ReportURLHandler returns a short-lived signed download URL for a report.
func (h *StorageHandler) ReportURLHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "file storage is not configured", "")
		return
	}
	reportID := c.Param("id")
	url, err := h.Storage.GetDownloadURL(c.Request.Context(), reportFolder+"/"+reportID, reportURLTTL)
	if err != nil {
		zap.L().Error("failed to sign report url", zap.Error(err), zap.String("report_id", reportID))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate url", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in_seconds": int(reportURLTTL.Seconds())})
}
