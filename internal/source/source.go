// Package source fetches the current list of service locations.
package source

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/waypoint/internal/models"
)

// Source is a read-only store of service locations.
// Fetch returns the records in their stored order.
type Source interface {
	Fetch(ctx context.Context) ([]models.Record, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
