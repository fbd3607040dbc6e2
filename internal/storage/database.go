package storage

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// timeLayout is how timestamps are written to TEXT columns.
const timeLayout = time.RFC3339Nano

// Store is the sqlite-backed persistence for accounts, saved solutions and
// training examples.
type Store struct {
	db  *sql.DB
	log *zap.Logger
	now func() time.Time
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"username" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"name" TEXT,
		"age" INTEGER,
		"gender" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS saved_solutions (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"user_id" INTEGER NOT NULL,
		"scenario_id" TEXT NOT NULL,
		"answers" TEXT NOT NULL,
		"solution" TEXT NOT NULL,
		"created_at" TEXT NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS training_examples (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"question" TEXT NOT NULL,
		"answer" TEXT NOT NULL,
		"country" TEXT NOT NULL,
		"category" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
	)`,
}

// Open connects to the sqlite file at path and creates missing tables.
// ":memory:" gives a private in-memory database.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open(): failed to open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open(): failed to connect to database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("Open(): failed to create table: %w", err)
		}
	}
	log.Info("Database ready", zap.String("path", path))
	return &Store{db: db, log: log, now: time.Now}, nil
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
