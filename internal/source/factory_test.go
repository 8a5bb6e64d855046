package source_test

import (
	"context"

	"log/slog"
	"testing"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/UnknownOlympus/waypoint/internal/source"
	"github.com/UnknownOlympus/waypoint/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := slog.Default()

	t.Run("create sheet source", func(t *testing.T) {
		src, err := source.New(source.Config{Type: source.TypeSheet, Logger: logger})

		require.NoError(t, err)
		_, ok := src.(*source.SheetSource)
		assert.True(t, ok, "expected source to be *SheetSource")
	})

	t.Run("create postgres source", func(t *testing.T) {
		repo := mocks.NewInterface(t)
		name := "A"
		records := []models.Record{{Latitude: "1", Longitude: "2", Name: &name}}
		repo.On("FetchLocations", context.Background()).Return(records, nil).Once()

		src, err := source.New(source.Config{Type: source.TypePostgres, Repository: repo, Logger: logger})
		require.NoError(t, err)

		got, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("postgres source without repository fails", func(t *testing.T) {
		src, err := source.New(source.Config{Type: source.TypePostgres, Logger: logger})

		require.Nil(t, src)
		assert.ErrorContains(t, err, "repository is required for postgres source")
	})

	t.Run("unsupported source type", func(t *testing.T) {
		src, err := source.New(source.Config{Type: source.Type("ftp"), Logger: logger})

		require.Nil(t, src)
		assert.ErrorContains(t, err, "unsupported source type: ftp")
	})
}
