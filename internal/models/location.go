package models

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Record is a single service location row as delivered by a data source.
// Latitude and longitude are kept raw (text, number or absent) and parsed later by the locator.
type Record struct {
	Latitude  any     `json:"LAT"`       // Latitude as text or number.
	Longitude any     `json:"LON"`       // Longitude as text or number.
	Name      *string `json:"UNIT_NM"`   // Name of the service unit, may be null.
	Address   *string `json:"UNIT_ADDR"` // Address of the service unit, may be null.
	Malformed bool    `json:"-"`         // Row could not be read as an object.
}

// UnmarshalJSON accepts any JSON value for the name and address and keeps it as text.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Latitude  any `json:"LAT"`
		Longitude any `json:"LON"`
		Name      any `json:"UNIT_NM"`
		Address   any `json:"UNIT_ADDR"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Name:      textOf(raw.Name),
		Address:   textOf(raw.Address),
	}
	return nil
}

func textOf(value any) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return &v
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		text := string(encoded)
		return &text
	default:
		text, err := cast.ToStringE(v)
		if err != nil {
			return nil
		}
		return &text
	}
}

// NearestResult is the closest record to a caller together with the rounded distance.
type NearestResult struct {
	Name       *string `json:"UNIT_NM"`
	Address    *string `json:"UNIT_ADDR"`
	DistanceKm float64 `json:"distance_km"`
}
