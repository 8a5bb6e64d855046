// Package geo holds the great-circle math used to rank service locations.
package geo

import (
	"math"
	"strconv"

	"github.com/UnknownOlympus/waypoint/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(from, to models.Coordinates) float64 {
	lat1 := toRadians(from.Latitude)
	lon1 := toRadians(from.Longitude)
	lat2 := toRadians(to.Latitude)
	lon2 := toRadians(to.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to two decimal places. Rounding is done on the exact
// binary value and exact ties go to the even digit.
func RoundKm(distance float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(distance, 'f', 2, 64), 64)
	if err != nil {
		return distance
	}
	return rounded
}
