package handler

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/config"
	"github.com/fixcy/restaurant-booking/internal/model"
	"github.com/fixcy/restaurant-booking/internal/repository"
)

// thumbWidth is the pixel width of generated slider thumbnails; height
// follows the aspect ratio.
const thumbWidth = 480

// SliderHandler manages the homepage image slider. Uploaded files are
// stored under the configured uploads directory with random names, a
// thumbnail is derived at upload time, and the database keeps only the
// public URLs.
type SliderHandler struct {
	Repo *repository.SliderRepo
	Cfg  config.Config
}

// NewSliderHandler constructs a SliderHandler.
func NewSliderHandler(repo *repository.SliderRepo, cfg config.Config) *SliderHandler {
	if repo == nil {
		panic("nil repository passed to NewSliderHandler")
	}
	return &SliderHandler{Repo: repo, Cfg: cfg}
}

// List handles GET /v1/slider-images. Public, ordered by sort_order.
func (h *SliderHandler) List(c echo.Context) error {
	images, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

// Upload handles POST /v1/admin/slider. The multipart form must
// carry an "image" file; alt_text, link_url and sort_order are optional
// fields. A downscaled thumbnail is written next to the original.
func (h *SliderHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}
	imageURL, thumbURL, err := h.storeImage(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported image format"})
	}

	sortOrder := uint32(0)
	if raw := c.FormValue("sort_order"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort_order"})
		}
		sortOrder = uint32(n)
	}

	img := model.SliderImage{
		ImageURL:  imageURL,
		ThumbURL:  &thumbURL,
		AltText:   c.FormValue("alt_text"),
		LinkURL:   c.FormValue("link_url"),
		SortOrder: sortOrder,
	}
	if err := h.Repo.Create(c.Request().Context(), &img); err != nil {
		h.removeFile(imageURL)
		h.removeFile(thumbURL)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save image"})
	}
	return c.JSON(http.StatusCreated, img)
}

// storeImage decodes an uploaded file, writes it under the uploads
// directory with a random name and derives a downscaled thumbnail next
// to it. It returns the public URLs of both files.
func (h *SliderHandler) storeImage(fh *multipart.FileHeader) (imageURL, thumbURL string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	decoded, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		ext = ".jpg"
	}

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return "", "", err
	}

	name := uuid.NewString()
	imageFile := name + ext
	thumbFile := name + "_thumb" + ext
	if err := imaging.Save(decoded, filepath.Join(h.Cfg.UploadDir, imageFile)); err != nil {
		return "", "", err
	}
	thumb := imaging.Resize(decoded, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(h.Cfg.UploadDir, thumbFile)); err != nil {
		// The full image is already on disk; don't strand it.
		_ = os.Remove(filepath.Join(h.Cfg.UploadDir, imageFile))
		return "", "", err
	}
	return path.Join(h.Cfg.UploadBaseURL, imageFile), path.Join(h.Cfg.UploadBaseURL, thumbFile), nil
}

// Update handles POST /v1/admin/slider/:id. The multipart form may
// carry a replacement "image" file plus any of alt_text, link_url and
// sort_order; omitted fields keep their value. When the image is
// replaced, the previous files are unlinked best effort after the row
// commits.
func (h *SliderHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}

	ctx := c.Request().Context()
	img, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	oldImageURL, oldThumbURL := img.ImageURL, img.ThumbURL

	if v := c.FormValue("alt_text"); v != "" {
		img.AltText = v
	}
	if v := c.FormValue("link_url"); v != "" {
		img.LinkURL = v
	}
	if v := c.FormValue("sort_order"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort_order"})
		}
		img.SortOrder = uint32(n)
	}

	replaced := false
	if fh, err := c.FormFile("image"); err == nil {
		imageURL, thumbURL, err := h.storeImage(fh)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported image format"})
		}
		img.ImageURL = imageURL
		img.ThumbURL = &thumbURL
		replaced = true
	}

	if err := h.Repo.Update(ctx, &img); err != nil {
		if replaced {
			h.removeFile(img.ImageURL)
			h.removeFile(*img.ThumbURL)
		}
		if errors.Is(err, repository.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update image"})
	}

	if replaced {
		h.removeFile(oldImageURL)
		if oldThumbURL != nil {
			h.removeFile(*oldThumbURL)
		}
	}
	return c.JSON(http.StatusOK, img)
}

// Delete handles DELETE /v1/admin/slider/:id. The row goes first;
// file removal is best effort because a stray file is harmless while a
// stray row renders a broken image.
func (h *SliderHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image id"})
	}

	ctx := c.Request().Context()
	img, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete image"})
	}

	h.removeFile(img.ImageURL)
	if img.ThumbURL != nil {
		h.removeFile(*img.ThumbURL)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Image deleted."})
}

// removeFile maps a public URL back to a path under the uploads
// directory and removes it, refusing anything that escapes the prefix.
func (h *SliderHandler) removeFile(url string) {
	rel, ok := strings.CutPrefix(url, h.Cfg.UploadBaseURL+"/")
	if !ok || rel == "" || strings.Contains(rel, "..") || strings.Contains(rel, "/") {
		return
	}
	if err := os.Remove(filepath.Join(h.Cfg.UploadDir, rel)); err != nil && !os.IsNotExist(err) {
		log.Printf("slider: remove file %s: %v", rel, err)
	}
}
