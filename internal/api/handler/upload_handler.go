package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukatsiya/education-platform/internal/api/metrics"
	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// UploadHandler handles image uploads and listing.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// List returns the public paths of all stored files.
//
// @Summary      List uploaded files
// @Tags         uploads
// @Produce      json
// @Success      200  {object}  fileListResponse
// @Failure      500  {object}  errorResponse
// @Router       /uploads [get]
func (h *UploadHandler) List(c echo.Context) error {
	files, err := h.service.ListFiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fileListResponse{Files: files})
}

// Upload stores a JPEG, PNG or GIF image up to 5 MB, sent as multipart field
// "image", and responds with its public path.
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file (JPEG, PNG or GIF)"
// @Success      201    {object}  uploadResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	path, err := h.service.SaveImage(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
	)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFile) || errors.Is(err, domain.ErrFileTooLarge) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.UploadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusCreated, uploadResponse{FilePath: path})
}
