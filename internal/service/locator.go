package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/waypoint/internal/geocoding"
	"github.com/UnknownOlympus/waypoint/internal/locator"
	"github.com/UnknownOlympus/waypoint/internal/metrics"
	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/UnknownOlympus/waypoint/internal/source"
)

// Errors returned by the locator service. Callers match them with errors.Is.
var (
	ErrNoValidLocation  = locator.ErrNoValidLocation
	ErrGeocoderDisabled = geocoding.ErrDisabled
)

// FetchError reports that the location source could not be read.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to fetch data: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GeocodeError reports that an address could not be turned into coordinates.
type GeocodeError struct {
	Err error
}

func (e *GeocodeError) Error() string {
	return "failed to geocode address: " + e.Err.Error()
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// LocatorService answers nearest service location lookups.
type LocatorService struct {
	log          *slog.Logger
	source       source.Source
	sourceName   string // source type for metrics labeling
	geocoder     geocoding.Provider
	metrics      *metrics.Metrics
	fetchTimeout time.Duration
	policy       locator.MissingPolicy
}

// NewLocatorService creates a LocatorService. Pass geocoding.DisabledProvider when address lookup is off.
func NewLocatorService(
	log *slog.Logger,
	src source.Source,
	sourceName string,
	geocoder geocoding.Provider,
	metrics *metrics.Metrics,
	fetchTimeout time.Duration,
	policy locator.MissingPolicy,
) *LocatorService {
	if fetchTimeout <= 0 {
		fetchTimeout = source.DefaultTimeout
	}

	return &LocatorService{
		log:          log,
		source:       src,
		sourceName:   sourceName,
		geocoder:     geocoder,
		metrics:      metrics,
		fetchTimeout: fetchTimeout,
		policy:       policy,
	}
}

// Nearest fetches the current locations and returns the one closest to coords.
func (ls *LocatorService) Nearest(ctx context.Context, coords models.Coordinates) (*models.NearestResult, error) {
	ls.metrics.InFlight.Inc()
	defer ls.metrics.InFlight.Dec()

	records, err := ls.fetch(ctx)
	if err != nil {
		ls.metrics.Lookups.WithLabelValues("fetch_error").Inc()
		return nil, err
	}

	result, stats, err := locator.Resolve(coords, records, ls.policy)
	ls.metrics.RecordsScanned.Observe(float64(stats.Scanned))
	for reason, n := range stats.Skipped {
		ls.metrics.SkippedRecords.WithLabelValues(string(reason)).Add(float64(n))
	}

	if err != nil {
		ls.log.WarnContext(ctx, "No valid location for lookup",
			"lat", coords.Latitude, "lon", coords.Longitude,
			"scanned", stats.Scanned, "skipped", stats.SkippedTotal())
		ls.metrics.Lookups.WithLabelValues("no_valid_location").Inc()
		return nil, err
	}

	ls.log.DebugContext(ctx, "Nearest location resolved",
		"lat", coords.Latitude, "lon", coords.Longitude,
		"distance_km", result.DistanceKm,
		"scanned", stats.Scanned, "skipped", stats.SkippedTotal())
	ls.metrics.Lookups.WithLabelValues("success").Inc()

	return &result, nil
}

// NearestByAddress geocodes address and returns the location closest to it.
func (ls *LocatorService) NearestByAddress(ctx context.Context, address string) (*models.NearestResult, error) {
	coords, err := ls.geocoder.Geocode(ctx, address)
	if errors.Is(err, ErrGeocoderDisabled) {
		return nil, err
	}
	if err != nil {
		ls.log.ErrorContext(ctx, "Failed to geocode", "address", address, "error", err)
		ls.metrics.Lookups.WithLabelValues("geocode_error").Inc()
		return nil, &GeocodeError{Err: err}
	}

	return ls.Nearest(ctx, *coords)
}

func (ls *LocatorService) fetch(ctx context.Context) ([]models.Record, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, ls.fetchTimeout)
	defer cancel()

	startTime := time.Now()
	records, err := ls.source.Fetch(fetchCtx)
	ls.metrics.FetchSeconds.WithLabelValues(ls.sourceName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		ls.log.ErrorContext(ctx, "Failed to fetch locations", "source", ls.sourceName, "error", err)
		ls.metrics.FetchErrors.Inc()
		return nil, &FetchError{Err: err}
	}

	return records, nil
}
