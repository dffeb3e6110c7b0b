package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"forumhub/internal/auth"
	"forumhub/internal/service"
)

// UploadHandler accepts multipart file uploads into the blob store.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload godoc
// @Summary Upload a file
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if auth.CurrentUser(c) == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}
	defer src.Close()

	url, err := h.uploadService.Store(c.Request().Context(), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		if err == service.ErrStorageUnbound {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "file upload failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "file uploaded",
		"url":     url,
	})
}
