package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	s := Open(path)
	t.Cleanup(s.Close)
	return s, path
}

func queryDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveCameraProfileUpserts(t *testing.T) {
	s, path := openTestStore(t)

	require.True(t, s.SaveCameraProfile("default", 0, 5, 12, 80, "PERSPECTIVE"))
	require.True(t, s.SaveCameraProfile("default", 1, 2, 3, 60, "ORTHO"))

	db := queryDB(t, path)
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&count))
	assert.Equal(t, 1, count)

	var x, y, z, fov float64
	var projection string
	require.NoError(t, db.QueryRow(
		`SELECT camera_pos_x, camera_pos_y, camera_pos_z, fov, projection FROM profiles WHERE name = ?`,
		"default").Scan(&x, &y, &z, &fov, &projection))
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 3.0, z)
	assert.Equal(t, 60.0, fov)
	assert.Equal(t, "ORTHO", projection)
}

func TestLogTelemetryInsertsRows(t *testing.T) {
	s, path := openTestStore(t)

	require.True(t, s.LogTelemetry(62.5, 16.0))
	require.True(t, s.LogTelemetry(58.8, 17.0))

	db := queryDB(t, path)
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM telemetry`).Scan(&count))
	assert.Equal(t, 2, count)

	var ts string
	require.NoError(t, db.QueryRow(`SELECT ts FROM telemetry LIMIT 1`).Scan(&ts))
	assert.NotEmpty(t, ts)
}

func TestLogErrorInsertsRow(t *testing.T) {
	s, path := openTestStore(t)

	require.True(t, s.LogError("texture", "decode failed: bad.png"))

	db := queryDB(t, path)
	var source, message string
	require.NoError(t, db.QueryRow(`SELECT source, message FROM errors`).Scan(&source, &message))
	assert.Equal(t, "texture", source)
	assert.Equal(t, "decode failed: bad.png", message)
}

func TestOpenFailureDegradesToNoop(t *testing.T) {
	// a directory path is not a valid database file
	s := Open(t.TempDir())
	defer s.Close()

	assert.False(t, s.SaveCameraProfile("default", 0, 0, 0, 80, "PERSPECTIVE"))
	assert.False(t, s.LogTelemetry(60, 16.6))
	assert.False(t, s.LogError("test", "message"))
}
