package store

import (
	"database/sql"

	"github.com/Carmen-Shannon/vista-go/engine/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	name TEXT PRIMARY KEY,
	camera_pos_x REAL NOT NULL,
	camera_pos_y REAL NOT NULL,
	camera_pos_z REAL NOT NULL,
	fov REAL NOT NULL,
	projection TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS telemetry (
	ts DATETIME DEFAULT CURRENT_TIMESTAMP,
	fps REAL NOT NULL,
	frame_ms REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS errors (
	ts DATETIME DEFAULT CURRENT_TIMESTAMP,
	source TEXT NOT NULL,
	message TEXT NOT NULL
);`

// Store persists camera profiles, frame telemetry and error reports. Every
// write reports success with a bool instead of an error so callers on the
// frame loop never have to branch on failures.
type Store interface {
	// SaveCameraProfile upserts a named camera profile.
	//
	// Parameters:
	//   - name: the profile key
	//   - x: camera world x
	//   - y: camera world y
	//   - z: camera world z
	//   - fov: the zoom value in degrees
	//   - projection: "PERSPECTIVE" or "ORTHO"
	//
	// Returns:
	//   - bool: true if the row was written
	SaveCameraProfile(name string, x, y, z, fov float32, projection string) bool

	// LogTelemetry inserts one frame-statistics row stamped with the current time.
	//
	// Parameters:
	//   - fps: average frames per second
	//   - frameMs: average frame time in milliseconds
	//
	// Returns:
	//   - bool: true if the row was written
	LogTelemetry(fps, frameMs float64) bool

	// LogError inserts one error row stamped with the current time.
	//
	// Parameters:
	//   - source: the subsystem that produced the error
	//   - message: the error text
	//
	// Returns:
	//   - bool: true if the row was written
	LogError(source, message string) bool

	// Close releases the underlying database. Safe to call on a store that
	// never opened.
	Close()
}

var _ Store = &sqliteStore{}
var _ Store = noopStore{}

type sqliteStore struct {
	db *sql.DB
}

// noopStore is the degraded store used when the database cannot be opened.
// Every write reports failure without side effects.
type noopStore struct{}

func (noopStore) SaveCameraProfile(string, float32, float32, float32, float32, string) bool {
	return false
}
func (noopStore) LogTelemetry(float64, float64) bool { return false }
func (noopStore) LogError(string, string) bool       { return false }
func (noopStore) Close()                             {}

// Disabled returns a store that drops every write. Used when persistence is
// turned off in the configuration.
//
// Returns:
//   - Store: the no-op store
func Disabled() Store {
	return noopStore{}
}

// Open opens or creates the sqlite database at the given path and ensures the
// schema exists. When the database cannot be opened or migrated the failure is
// logged and a no-op store is returned, so the caller keeps rendering with
// persistence disabled.
//
// Parameters:
//   - path: the database file path
//
// Returns:
//   - Store: the opened store, or a no-op store on failure
func Open(path string) Store {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Log.Warn("store unavailable", zap.String("path", path), zap.Error(err))
		return noopStore{}
	}
	if _, err := db.Exec(schema); err != nil {
		logger.Log.Warn("store schema setup failed", zap.String("path", path), zap.Error(err))
		_ = db.Close()
		return noopStore{}
	}
	return &sqliteStore{db: db}
}

func (s *sqliteStore) SaveCameraProfile(name string, x, y, z, fov float32, projection string) bool {
	const query = `
INSERT INTO profiles (name, camera_pos_x, camera_pos_y, camera_pos_z, fov, projection)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	camera_pos_x = excluded.camera_pos_x,
	camera_pos_y = excluded.camera_pos_y,
	camera_pos_z = excluded.camera_pos_z,
	fov = excluded.fov,
	projection = excluded.projection`
	if _, err := s.db.Exec(query, name, x, y, z, fov, projection); err != nil {
		logger.Log.Warn("save camera profile failed", zap.String("name", name), zap.Error(err))
		return false
	}
	return true
}

func (s *sqliteStore) LogTelemetry(fps, frameMs float64) bool {
	if _, err := s.db.Exec(`INSERT INTO telemetry (fps, frame_ms) VALUES (?, ?)`, fps, frameMs); err != nil {
		logger.Log.Warn("log telemetry failed", zap.Error(err))
		return false
	}
	return true
}

func (s *sqliteStore) LogError(source, message string) bool {
	if _, err := s.db.Exec(`INSERT INTO errors (source, message) VALUES (?, ?)`, source, message); err != nil {
		logger.Log.Warn("log error failed", zap.String("source", source), zap.Error(err))
		return false
	}
	return true
}

func (s *sqliteStore) Close() {
	if err := s.db.Close(); err != nil {
		logger.Log.Warn("store close failed", zap.Error(err))
	}
}
