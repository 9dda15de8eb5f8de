package facility

import (
	"net/http"
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "facility not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidKind     = apperror.New(http.StatusBadRequest, "invalid facility kind")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be positive")
	ErrInvalidHours    = apperror.New(http.StatusBadRequest, "opening hours must satisfy open < close")
	ErrIDTaken         = apperror.New(http.StatusConflict, "facility id already exists")
)

// Kind classifies a bookable facility.
type Kind string

const (
	KindRoom Kind = "room"
	KindDesk Kind = "desk"
	KindPod  Kind = "pod"
)

// ValidKinds lists the accepted facility kinds.
var ValidKinds = []Kind{KindRoom, KindDesk, KindPod}

// Facility is a bookable physical resource (room, desk, pod) with a
// fixed capacity and daily opening hours.
type Facility struct {
	ID        string // slug, e.g. "meeting-a"
	Name      string
	Kind      Kind
	Capacity  int
	OpenTime  string // HH:MM
	CloseTime string // HH:MM
	CreatedAt time.Time
}
