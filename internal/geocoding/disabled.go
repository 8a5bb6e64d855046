package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/waypoint/internal/models"
)

// ErrDisabled is returned by DisabledProvider for every address.
var ErrDisabled = errors.New("address lookup is disabled")

// DisabledProvider is the Provider used when no geocoder is configured.
type DisabledProvider struct{}

func (DisabledProvider) Geocode(_ context.Context, _ string) (*models.Coordinates, error) {
	return nil, ErrDisabled
}
