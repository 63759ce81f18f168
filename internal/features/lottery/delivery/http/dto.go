package http

import (
	"time"

	"event-lottery-backend/internal/features/lottery/models"
)

type CreateEventRequest struct {
	Name                string         `json:"name" binding:"required"`
	Description         string         `json:"description"`
	Capacity            int            `json:"capacity" binding:"required"`
	WaitingListLimit    int            `json:"waiting_list_limit"`
	RegistrationOpen    time.Time      `json:"registration_open" binding:"required"`
	RegistrationClose   time.Time      `json:"registration_close" binding:"required"`
	GeolocationRequired bool           `json:"geolocation_required"`
	RadiusRestrictionKm float64        `json:"radius_restriction_km"`
	LocationCoords      *models.LatLng `json:"location_coords"`
}

type JoinRequest struct {
	EntrantID string         `json:"entrant_id" binding:"required"`
	Location  *models.LatLng `json:"location"`
}

type LeaveRequest struct {
	EntrantID string `json:"entrant_id" binding:"required"`
}

type DrawRequest struct {
	Count int    `json:"count"`
	Seed  *int64 `json:"seed"`
}

type DrawResponse struct {
	DrawID      string   `json:"draw_id"`
	SelectedIDs []string `json:"selected_ids"`
	Seed        int64    `json:"seed"`
}

type RespondRequest struct {
	EntrantID string `json:"entrant_id" binding:"required"`
	Decision  string `json:"decision" binding:"required"`
}

type RespondResponse struct {
	OK                bool `json:"ok"`
	BackfillTriggered bool `json:"backfill_triggered"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
