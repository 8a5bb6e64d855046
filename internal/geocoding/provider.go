// Package geocoding turns a free-form address into coordinates for the address lookup endpoint.
package geocoding

import (
	"context"

	"github.com/UnknownOlympus/waypoint/internal/models"
)

// Provider geocodes an address into coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
