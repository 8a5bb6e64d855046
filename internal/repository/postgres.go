package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrInvalidTable is returned when the configured table name is not a plain SQL identifier.
var ErrInvalidTable = errors.New("invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// NewDatabase opens a pgx connection pool and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, dbname string) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, port),
		Path:   dbname,
	}

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// FetchLocations returns every service unit of the configured table in insertion order.
// Coordinates are selected as text so numeric and text columns are handled alike.
func (r *Repository) FetchLocations(ctx context.Context) ([]models.Record, error) {
	if !tableName.MatchString(r.table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, r.table)
	}

	query := fmt.Sprintf(`
		SELECT unit_nm, unit_addr, lat::text, lon::text
		FROM %s
		ORDER BY id ASC;
	`, r.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service units: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var (
			rec      models.Record
			lat, lon *string
		)
		if errScan := rows.Scan(&rec.Name, &rec.Address, &lat, &lon); errScan != nil {
			return nil, fmt.Errorf("failed to scan service unit: %w", errScan)
		}
		rec.Latitude = textOrNil(lat)
		rec.Longitude = textOrNil(lon)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Service units loaded from database", "table", r.table, "count", len(records))

	return records, nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func textOrNil(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

var _ Database = (*pgxpool.Pool)(nil)
