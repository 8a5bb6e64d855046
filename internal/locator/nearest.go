package locator

import (
	"errors"
	"math"

	"github.com/UnknownOlympus/waypoint/internal/geo"
	"github.com/UnknownOlympus/waypoint/internal/models"
)

// ErrNoValidLocation is returned when no record has usable coordinates.
var ErrNoValidLocation = errors.New("no valid UNIT location found")

// Stats describes a single resolve run.
type Stats struct {
	Scanned int                // records received
	Skipped map[SkipReason]int // excluded records by reason
}

// SkippedTotal returns the number of excluded records.
func (s Stats) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

type candidate struct {
	record models.Record
	coords models.Coordinates
}

// Resolve returns the record closest to origin. Records are scanned in input order and
// an exact tie keeps the earlier record.
func Resolve(origin models.Coordinates, records []models.Record, policy MissingPolicy) (models.NearestResult, Stats, error) {
	candidates, stats := filter(records, policy)

	var (
		best    *candidate
		minDist = math.Inf(1)
	)
	for i := range candidates {
		dist := geo.Haversine(origin, candidates[i].coords)
		if dist < minDist {
			minDist = dist
			best = &candidates[i]
		}
	}

	if best == nil {
		return models.NearestResult{}, stats, ErrNoValidLocation
	}

	return models.NearestResult{
		Name:       best.record.Name,
		Address:    best.record.Address,
		DistanceKm: geo.RoundKm(minDist),
	}, stats, nil
}

func filter(records []models.Record, policy MissingPolicy) ([]candidate, Stats) {
	stats := Stats{Scanned: len(records), Skipped: make(map[SkipReason]int)}
	candidates := make([]candidate, 0, len(records))

	for _, rec := range records {
		parsed := ParseRecord(rec, policy)
		if !parsed.OK() {
			stats.Skipped[parsed.Skip]++
			continue
		}
		candidates = append(candidates, candidate{record: rec, coords: parsed.Coordinates})
	}

	return candidates, stats
}
