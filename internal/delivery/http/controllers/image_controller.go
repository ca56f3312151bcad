package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/store"
)

// maxUploadBytes caps the multipart form size for image uploads.
const maxUploadBytes = 32 << 20

type ImageController struct {
	Logger    *slog.Logger
	Store     *store.Store
	UploadDir string
}

func NewImageController(logger *slog.Logger, s *store.Store, uploadDir string) *ImageController {
	return &ImageController{Logger: logger, Store: s, UploadDir: uploadDir}
}

// storedFilename derives the on-disk name for an upload: millisecond
// timestamp prefix plus the original name with spaces replaced.
func storedFilename(originalName string) string {
	name := filepath.Base(originalName)
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), name)
}

// Upload godoc
// @Summary Upload an image
// @Description Multipart upload: "image" is the file, "group_id" the target group, "uploaded_by" the uploader.
// @Tags images
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Param group_id formData string true "Target group id"
// @Param uploaded_by formData string true "Uploader username"
// @Success 201 {object} helpers.APIResponse "data contains the created image record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown group)"
// @Router /upload [post]
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "image file is required")
		return
	}
	defer file.Close()

	groupID := r.FormValue("group_id")
	uploadedBy := r.FormValue("uploaded_by")
	if groupID == "" || uploadedBy == "" || header.Filename == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing required fields")
		return
	}

	filename := storedFilename(header.Filename)
	path := filepath.Join(c.UploadDir, filename)
	dst, err := os.Create(path)
	if err != nil {
		respondError(w, r, c.Logger, fmt.Errorf("create upload file: %w", err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		respondError(w, r, c.Logger, fmt.Errorf("write upload file: %w", err))
		return
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		respondError(w, r, c.Logger, fmt.Errorf("close upload file: %w", err))
		return
	}

	img, err := c.Store.CreateImage(filename, header.Filename, groupID, uploadedBy)
	if err != nil {
		// The record was rejected (e.g. unknown group); don't keep the bytes.
		os.Remove(path)
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, img)
}

// UserImages godoc
// @Summary List images visible to a user
// @Description Returns every image in a group the user is a member of.
// @Tags images
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} helpers.APIResponse "data is the list of images"
// @Router /images/{username} [get]
func (c *ImageController) UserImages(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.UserImages(username))
}

// Delete godoc
// @Summary Delete an image
// @Description Removes the stored file and the record; suggestions, approved tags and their upvotes cascade.
// @Tags images
// @Produce json
// @Param image_id path string true "Image id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /images/delete/{image_id} [delete]
func (c *ImageController) Delete(w http.ResponseWriter, r *http.Request) {
	imageID := r.PathValue("image_id")
	img, err := c.Store.Image(imageID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	if err := os.Remove(filepath.Join(c.UploadDir, img.Filename)); err != nil && !os.IsNotExist(err) {
		c.Logger.Warn("failed to remove image file", "filename", img.Filename, "err", err)
	}
	if err := c.Store.DeleteImage(imageID); err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "image deleted"})
}

// ServeFile godoc
// @Summary Serve an uploaded image file
// @Tags images
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /uploads/{filename} [get]
func (c *ImageController) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if filename == "" || filename != filepath.Base(filename) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid filename")
		return
	}
	http.ServeFile(w, r, filepath.Join(c.UploadDir, filename))
}
