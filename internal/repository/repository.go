package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/jackc/pgx/v5"
)

// Database is the subset of *pgxpool.Pool used by the repository.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

type Repository struct {
	db    Database
	table string
	log   *slog.Logger
}

type Interface interface {
	FetchLocations(ctx context.Context) ([]models.Record, error)
}

// NewRepository creates a new instance of Repository reading service units from table.
func NewRepository(db Database, table string, log *slog.Logger) *Repository {
	return &Repository{db: db, table: table, log: log}
}
