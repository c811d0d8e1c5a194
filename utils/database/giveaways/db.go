package giveaways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the giveaway database and ensures all necessary tables are created.
func Init(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to giveaway database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS giveaways (
	    id TEXT PRIMARY KEY,
	    guild_id INTEGER NOT NULL,
	    channel_id INTEGER NOT NULL,
	    message_id INTEGER NOT NULL,
	    ends_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS giveaway_role_rewards (
	    role_id INTEGER NOT NULL,
	    giveaway_id TEXT NOT NULL REFERENCES giveaways(id),
	    PRIMARY KEY (role_id, giveaway_id)
	);`

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create giveaway tables: %w", err)
	}

	return db, nil
}
