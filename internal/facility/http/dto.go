package http

import (
	"time"

	"github.com/paksr/MiniProject-Shoseki/internal/facility"
)

type FacilityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Capacity  int       `json:"capacity"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	CreatedAt time.Time `json:"created_at"`
}

// FacilityTag is a brief representation of a facility.
type FacilityTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:        f.ID,
		Name:      f.Name,
		Kind:      string(f.Kind),
		Capacity:  f.Capacity,
		OpenTime:  f.OpenTime,
		CloseTime: f.CloseTime,
		CreatedAt: f.CreatedAt,
	}
}

type CreateFacilityRequest struct {
	ID        string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=room desk pod"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
	OpenTime  string `json:"open_time" binding:"required,datetime=15:04"`
	CloseTime string `json:"close_time" binding:"required,datetime=15:04"`
}

type UpdateFacilityRequest struct {
	Name      *string `json:"name"`
	Kind      *string `json:"kind" binding:"omitempty,oneof=room desk pod"`
	Capacity  *int    `json:"capacity" binding:"omitempty,min=1"`
	OpenTime  *string `json:"open_time" binding:"omitempty,datetime=15:04"`
	CloseTime *string `json:"close_time" binding:"omitempty,datetime=15:04"`
}
