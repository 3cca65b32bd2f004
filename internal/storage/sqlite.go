// Package storage provides an SQLite-backed level library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pipeforge/internal/levels"
)

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// LevelInfo is the stored metadata of one level, without the tile data.
type LevelInfo struct {
	ID            string
	Name          string
	World         int
	Cols          int
	Rows          int
	Goals         int
	MaxMoves      int
	SolutionMoves int
	Compression   string
	CreatedAt     time.Time
}

// WorldStats aggregates the stored levels of one world.
type WorldStats struct {
	World       int
	LevelCount  int
	AvgMaxMoves float64
	MinMaxMoves int
	MaxMaxMoves int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			world INTEGER NOT NULL DEFAULT 0,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			goals INTEGER NOT NULL,
			max_moves INTEGER NOT NULL,
			solution_moves INTEGER NOT NULL,
			compression TEXT NOT NULL DEFAULT '',
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_world ON levels(world);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel stores a level, replacing any existing level with the same ID.
// The tile data is stored as the compact YAML encoding.
func (s *Store) SaveLevel(l *levels.Level) error {
	data, err := levels.EncodeYAML(l)
	if err != nil {
		return fmt.Errorf("storage: cannot encode level %s: %w", l.ID, err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO levels
		 (id, name, world, cols, rows, goals, max_moves, solution_moves, compression, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.World, l.Cols, l.Rows, len(l.Goals),
		l.MaxMoves, len(l.Solution), l.Compression, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %s: %w", l.ID, err)
	}
	return nil
}

// LevelByID retrieves and decodes a stored level.
// Returns (nil, nil) when no level with the ID exists.
func (s *Store) LevelByID(id string) (*levels.Level, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM levels WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %s: %w", id, err)
	}

	lvl, err := levels.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot decode level %s: %w", id, err)
	}
	return lvl, nil
}

// LevelsByWorld retrieves the metadata of every level in a world, ordered
// by ID.
func (s *Store) LevelsByWorld(worldNum int) ([]LevelInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, world, cols, rows, goals, max_moves, solution_moves, compression, created_at
		 FROM levels WHERE world = ? ORDER BY id`,
		worldNum,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query world %d: %w", worldNum, err)
	}
	defer rows.Close()
	return scanInfos(rows)
}

// ListLevels retrieves the metadata of all stored levels ordered by world
// then ID.
func (s *Store) ListLevels() ([]LevelInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, world, cols, rows, goals, max_moves, solution_moves, compression, created_at
		 FROM levels ORDER BY world, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list levels: %w", err)
	}
	defer rows.Close()
	return scanInfos(rows)
}

// StatsForWorld aggregates move-budget statistics for one world.
func (s *Store) StatsForWorld(worldNum int) (*WorldStats, error) {
	stats := &WorldStats{World: worldNum}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(max_moves), 0), COALESCE(MIN(max_moves), 0), COALESCE(MAX(max_moves), 0)
		 FROM levels WHERE world = ?`,
		worldNum,
	).Scan(&stats.LevelCount, &stats.AvgMaxMoves, &stats.MinMaxMoves, &stats.MaxMaxMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}
	return stats, nil
}

// DeleteWorld removes every level of a world. Returns the number of
// deleted levels.
func (s *Store) DeleteWorld(worldNum int) (int64, error) {
	res, err := s.db.Exec("DELETE FROM levels WHERE world = ?", worldNum)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete world %d: %w", worldNum, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// scanInfos reads LevelInfo rows.
func scanInfos(rows *sql.Rows) ([]LevelInfo, error) {
	var infos []LevelInfo
	for rows.Next() {
		var info LevelInfo
		var createdAt any
		if err := rows.Scan(
			&info.ID, &info.Name, &info.World, &info.Cols, &info.Rows,
			&info.Goals, &info.MaxMoves, &info.SolutionMoves, &info.Compression, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			info.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.CreatedAt = parsed
			}
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}
