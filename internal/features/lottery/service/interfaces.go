package service

import (
	"context"

	"event-lottery-backend/internal/features/lottery/models"
)

// EligibilitySource exposes the profile/geolocation subsystem. It reports the
// entrant's current location and whether they have geolocation enabled; a nil
// location with enabled=true means the position is currently unknown.
type EligibilitySource interface {
	CurrentLocation(ctx context.Context, entrantID string) (*models.LatLng, bool, error)
}
