package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/UnknownOlympus/waypoint/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	msgRunning          = "Service Locator API is running."
	msgNoValidLocation  = "No valid UNIT location found"
	msgFetchFailed      = "Failed to fetch data: "
	msgGeocodeFailed    = "Failed to geocode address: "
	msgGeocoderDisabled = "Address lookup is disabled"
)

// NearestInput holds the query parameters of /nearest.
// They are bound as text so an empty value is rejected instead of read as 0.
type NearestInput struct {
	Lat string `form:"lat" binding:"required"`
	Lon string `form:"lon" binding:"required"`
}

// Coordinates parses the bound parameters.
func (in NearestInput) Coordinates() (models.Coordinates, error) {
	lat, err := parseQueryFloat("lat", in.Lat)
	if err != nil {
		return models.Coordinates{}, err
	}
	lon, err := parseQueryFloat("lon", in.Lon)
	if err != nil {
		return models.Coordinates{}, err
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func parseQueryFloat(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be a number: %q", name, value)
	}
	return parsed, nil
}

// AddressInput holds the query parameters of /nearest/address.
type AddressInput struct {
	Address string `form:"address" binding:"required"`
}

func (h *Handler) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": msgRunning})
}

func (h *Handler) handleNearest(c *gin.Context) {
	var input NearestInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	coords, err := input.Coordinates()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.locator.Nearest(c.Request.Context(), coords)
	h.respond(c, result, err)
}

func (h *Handler) handleNearestByAddress(c *gin.Context) {
	var input AddressInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.locator.NearestByAddress(c.Request.Context(), input.Address)
	h.respond(c, result, err)
}

// respond writes lookup failures as a JSON error body with status 200;
// only unexpected errors become a 500.
func (h *Handler) respond(c *gin.Context, result *models.NearestResult, err error) {
	if err == nil {
		c.JSON(http.StatusOK, result)
		return
	}

	var (
		fetchErr   *service.FetchError
		geocodeErr *service.GeocodeError
	)
	switch {
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusOK, gin.H{"error": msgFetchFailed + fetchErr.Err.Error()})
	case errors.Is(err, service.ErrNoValidLocation):
		c.JSON(http.StatusOK, gin.H{"error": msgNoValidLocation})
	case errors.Is(err, service.ErrGeocoderDisabled):
		c.JSON(http.StatusOK, gin.H{"error": msgGeocoderDisabled})
	case errors.As(err, &geocodeErr):
		c.JSON(http.StatusOK, gin.H{"error": msgGeocodeFailed + geocodeErr.Err.Error()})
	default:
		h.log.ErrorContext(c.Request.Context(), "Unexpected lookup failure", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
