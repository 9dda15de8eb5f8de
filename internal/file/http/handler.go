package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/file"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/response"
)

type Handler struct {
	fileService file.Service
}

func NewHandler(fileService file.Service) *Handler {
	return &Handler{fileService: fileService}
}

var errMissingFile = apperror.New(http.StatusBadRequest, "multipart field 'file' is required")

// UploadResponse returns the stored file's metadata and public URLs.
type UploadResponse struct {
	ID           string  `json:"id"`
	Filename     string  `json:"filename"`
	ContentType  string  `json:"content_type"`
	Size         int64   `json:"size"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// Upload accepts a multipart image and stores it with a thumbnail.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errMissingFile)
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), header, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := UploadResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		URL:         file.FileURL(f.ID),
	}
	if f.ThumbnailPath != nil {
		u := file.ThumbnailURL(f.ID)
		resp.ThumbnailURL = &u
	}

	c.JSON(http.StatusCreated, resp)
}

// ServeFile serves the file content by ID
func (h *Handler) ServeFile(c *gin.Context) {
	stream, fileInfo, err := h.fileService.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", fileInfo.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started.
		return
	}
}

// ServeThumbnail serves the thumbnail image by file ID
func (h *Handler) ServeThumbnail(c *gin.Context) {
	stream, fileInfo, err := h.fileService.DownloadThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG.
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+fileInfo.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}

// Delete removes an uploaded file. Owners delete their own uploads;
// admins can delete anything.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	f, err := h.fileService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if f.UserID != auth.GetUserID(c) && auth.GetUserRole(c) != auth.RoleAdmin {
		response.Error(c, apperror.New(http.StatusForbidden, "not permitted"))
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
