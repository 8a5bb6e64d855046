// Package locator finds the service location closest to a caller.
package locator

import (
	"fmt"
	"math"
	"strings"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/spf13/cast"
)

// MissingPolicy decides what happens to a record without a latitude or longitude.
type MissingPolicy string

const (
	// MissingSkip excludes records with an absent coordinate field.
	MissingSkip MissingPolicy = "skip"
	// MissingZero treats an absent coordinate field as 0.0.
	MissingZero MissingPolicy = "zero"
)

// ParseMissingPolicy converts a configuration value into a MissingPolicy.
func ParseMissingPolicy(value string) (MissingPolicy, error) {
	switch policy := MissingPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case MissingSkip, MissingZero:
		return policy, nil
	case "":
		return MissingSkip, nil
	default:
		return "", fmt.Errorf("unsupported missing coordinate policy: %s", value)
	}
}

// SkipReason explains why a record was excluded from the search.
type SkipReason string

const (
	SkipMissingLatitude  SkipReason = "missing_latitude"
	SkipMissingLongitude SkipReason = "missing_longitude"
	SkipInvalidLatitude  SkipReason = "invalid_latitude"
	SkipInvalidLongitude SkipReason = "invalid_longitude"
	SkipMalformedRow     SkipReason = "malformed_row"
)

// Parsed is the outcome of ParseRecord: either usable coordinates or a skip reason.
type Parsed struct {
	Coordinates models.Coordinates
	Skip        SkipReason // empty when Coordinates are valid
}

// OK reports whether the record can take part in the search.
func (p Parsed) OK() bool {
	return p.Skip == ""
}

// ParseRecord converts the raw latitude and longitude of a record into coordinates.
func ParseRecord(rec models.Record, policy MissingPolicy) Parsed {
	if rec.Malformed {
		return Parsed{Skip: SkipMalformedRow}
	}

	lat, skip := parseCoordinate(rec.Latitude, policy, SkipMissingLatitude, SkipInvalidLatitude)
	if skip != "" {
		return Parsed{Skip: skip}
	}

	lon, skip := parseCoordinate(rec.Longitude, policy, SkipMissingLongitude, SkipInvalidLongitude)
	if skip != "" {
		return Parsed{Skip: skip}
	}

	return Parsed{Coordinates: models.Coordinates{Latitude: lat, Longitude: lon}}
}

func parseCoordinate(raw any, policy MissingPolicy, missing, invalid SkipReason) (float64, SkipReason) {
	if raw == nil {
		if policy == MissingZero {
			return 0, ""
		}
		return 0, missing
	}

	if text, ok := raw.(string); ok {
		raw = strings.TrimSpace(text)
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, invalid
	}

	return value, ""
}
