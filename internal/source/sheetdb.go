package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/waypoint/internal/models"
)

const (
	// DefaultSheetURL is the SheetDB endpoint holding the service unit sheet.
	DefaultSheetURL = "https://sheetdb.io/api/v1/y7b56e2q4vutg"

	// DefaultTimeout bounds a single fetch of the sheet.
	DefaultTimeout = 10 * time.Second

	userAgent = "Waypoint-Locator/1.0 (https://github.com/UnknownOlympus/waypoint)"
)

// SheetSource reads service units from a SheetDB style JSON endpoint.
type SheetSource struct {
	client HTTPClient   // HTTP client for making requests
	url    string       // URL returning a JSON array of rows
	token  string       // Optional bearer token
	log    *slog.Logger // Logger for logging operations
}

// NewSheetSource creates a sheet source with its own HTTP client.
func NewSheetSource(url, token string, timeout time.Duration, log *slog.Logger) *SheetSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NewSheetSourceWithClient(&http.Client{Timeout: timeout}, url, token, log)
}

// NewSheetSourceWithClient creates a sheet source with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewSheetSourceWithClient(client HTTPClient, url, token string, log *slog.Logger) *SheetSource {
	if url == "" {
		url = DefaultSheetURL
	}

	return &SheetSource{client: client, url: url, token: token, log: log}
}

// Fetch downloads every row of the sheet.
func (s *SheetSource) Fetch(ctx context.Context) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute sheet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		s.log.ErrorContext(ctx, "Sheet API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("sheet API returned status %d: %s", resp.StatusCode, string(body))
	}

	var rows []json.RawMessage
	if err = json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode sheet response: %w", err)
	}

	// A row that is not an object is kept as malformed so the rest of the sheet stays usable.
	records := make([]models.Record, len(rows))
	for idx, row := range rows {
		if errRow := json.Unmarshal(row, &records[idx]); errRow != nil {
			s.log.DebugContext(ctx, "Malformed sheet row", "row", idx, "error", errRow)
			records[idx] = models.Record{Malformed: true}
		}
	}

	s.log.DebugContext(ctx, "Sheet rows received", "count", len(records))

	return records, nil
}
