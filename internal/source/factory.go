package source

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/waypoint/internal/repository"
)

// Type represents the kind of location source.
type Type string

const (
	// TypeSheet represents a SheetDB style HTTP JSON endpoint.
	TypeSheet Type = "sheetdb"
	// TypePostgres represents a Postgres table.
	TypePostgres Type = "postgres"
)

// Config holds configuration for creating a location source.
type Config struct {
	Type       Type                 // Type of source to create
	URL        string               // Sheet endpoint (sheetdb)
	Token      string               // Optional bearer token (sheetdb)
	Timeout    time.Duration        // HTTP client timeout (sheetdb)
	Repository repository.Interface // Location repository (postgres)
	Logger     *slog.Logger         // Logger for the source
}

// New creates a location source based on the provided configuration.
func New(config Config) (Source, error) {
	switch config.Type {
	case TypeSheet:
		return NewSheetSource(config.URL, config.Token, config.Timeout, config.Logger), nil
	case TypePostgres:
		if config.Repository == nil {
			return nil, errors.New("repository is required for postgres source")
		}
		return NewPostgresSource(config.Repository), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", config.Type)
	}
}
