package source

import (
	"context"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/UnknownOlympus/waypoint/internal/repository"
)

// PostgresSource serves service units stored in a Postgres table.
type PostgresSource struct {
	repo repository.Interface
}

// NewPostgresSource wraps a repository as a Source.
func NewPostgresSource(repo repository.Interface) *PostgresSource {
	return &PostgresSource{repo: repo}
}

// Fetch returns every row of the configured table in id order.
func (p *PostgresSource) Fetch(ctx context.Context) ([]models.Record, error) {
	return p.repo.FetchLocations(ctx)
}
