package repository_test

import (
	"context"

	"log/slog"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/waypoint/internal/repository"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetchLocationsQuery = `
		SELECT unit_nm, unit_addr, lat::text, lon::text
		FROM service_units
		ORDER BY id ASC;
	`

var columns = []string{"unit_nm", "unit_addr", "lat", "lon"}

func strPtr(s string) *string {
	return &s
}

func TestFetchLocations(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := context.Background()

	t.Run("error - query service units", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, "service_units", logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchLocationsQuery)).WillReturnError(assert.AnError)

		records, err := repo.FetchLocations(ctx)

		require.Nil(t, records)
		require.ErrorContains(t, err, "failed to query service units")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan service unit", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, "service_units", logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchLocationsQuery)).
			WillReturnRows(pgxmock.NewRows(columns[:2]).AddRow(strPtr("A"), strPtr("addrA")))

		records, err := repo.FetchLocations(ctx)

		require.Nil(t, records)
		require.ErrorContains(t, err, "failed to scan service unit")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, "service_units", logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchLocationsQuery)).
			WillReturnRows(
				pgxmock.NewRows(columns).
					AddRow(strPtr("A"), strPtr("addrA"), strPtr("25.0330"), strPtr("121.5654")).
					RowError(1, assert.AnError),
			)

		records, err := repo.FetchLocations(ctx)

		require.Nil(t, records)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - invalid table name", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, "units; DROP TABLE units", logger)

		records, err := repo.FetchLocations(ctx)

		require.Nil(t, records)
		require.ErrorIs(t, err, repository.ErrInvalidTable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch service units", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, "service_units", logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchLocationsQuery)).
			WillReturnRows(
				pgxmock.NewRows(columns).
					AddRow(strPtr("A"), strPtr("addrA"), strPtr("25.0330"), strPtr("121.5654")).
					AddRow(nil, nil, nil, strPtr("120.6736")),
			)

		records, err := repo.FetchLocations(ctx)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "A", *records[0].Name)
		assert.Equal(t, "addrA", *records[0].Address)
		assert.Equal(t, "25.0330", records[0].Latitude)
		assert.Equal(t, "121.5654", records[0].Longitude)
		assert.Nil(t, records[1].Name)
		assert.Nil(t, records[1].Latitude)
		assert.Equal(t, "120.6736", records[1].Longitude)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPing(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repository.NewRepository(mock, "service_units", slog.Default())

	mock.ExpectPing().WillReturnError(assert.AnError)

	require.ErrorIs(t, repo.Ping(context.Background()), assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
