// Package store keeps UI preferences in a small SQLite database.
// Tree items are never written here; the tree lives only in memory.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/arbor/internal/debug"
)

type EventType int

const (
	FetchSettings EventType = iota
	SaveSetting
)

// Known setting keys
const (
	KeyViewMode = "view_mode"
	KeyLastSeed = "last_seed_path"
)

type Request struct {
	Op    EventType
	Key   string
	Value string
}

type Response struct {
	Op       EventType
	Settings map[string]string
	Err      error
}

type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// WAL mode allows simultaneous readers and writers
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return fmt.Errorf("set synchronous: %w", err)
	}

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return fmt.Errorf("create settings table: %w", err)
	}

	d.conn = db
	debug.Log(debug.STORE, "opened %s", dbPath)
	return nil
}

// Start serves requests until RequestChan is closed
func (d *DB) Start() {
	for req := range d.RequestChan {
		switch req.Op {
		case FetchSettings:
			d.ResponseChan <- d.fetchSettings()
		case SaveSetting:
			if err := d.Save(req.Key, req.Value); err != nil {
				d.ResponseChan <- Response{Op: SaveSetting, Err: err}
				continue
			}
			// Always answer with a fresh snapshot to keep the UI in sync
			resp := d.fetchSettings()
			resp.Op = SaveSetting
			d.ResponseChan <- resp
		}
	}
}

// Settings returns every stored key/value pair
func (d *DB) Settings() (map[string]string, error) {
	if d.conn == nil {
		return nil, fmt.Errorf("store: database not open")
	}

	rows, err := d.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// Save upserts a single setting
func (d *DB) Save(key, value string) error {
	if d.conn == nil {
		return fmt.Errorf("store: database not open")
	}
	if _, err := d.conn.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	debug.Log(debug.STORE, "saved %s=%q", key, value)
	return nil
}

func (d *DB) fetchSettings() Response {
	settings, err := d.Settings()
	if err != nil {
		return Response{Op: FetchSettings, Err: err}
	}
	return Response{Op: FetchSettings, Settings: settings}
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
		d.conn = nil
	}
}
