package file

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "file not found")
	ErrNotImage         = apperror.New(http.StatusBadRequest, "only image uploads are accepted")
	ErrThumbnailMissing = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
)

// File represents an uploaded image (book cover, avatar) on disk.
type File struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
