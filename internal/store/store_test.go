package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/ecoleta/internal/db"
	"github.com/vbonduro/ecoleta/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })
	return d
}

func newPoint(city, uf string) domain.Point {
	return domain.Point{
		Image:     "abc.jpg",
		Name:      "EcoPonto",
		Email:     "a@b.com",
		Whatsapp:  "11999999999",
		Latitude:  -23.5,
		Longitude: -46.6,
		City:      city,
		UF:        uf,
	}
}

func countRows(t *testing.T, d *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, d.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
