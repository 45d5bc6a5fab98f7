package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS facilities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS dispatch_events (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			subservice TEXT NOT NULL,
			urgency INTEGER NOT NULL,
			facility TEXT,
			latitude REAL,
			longitude REAL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_facilities_category ON facilities(category);
		CREATE INDEX IF NOT EXISTS idx_events_category ON dispatch_events(category);
		CREATE INDEX IF NOT EXISTS idx_events_created_at ON dispatch_events(created_at);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) AddFacility(ctx context.Context, f *Facility) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO facilities (category, name, phone, address, latitude, longitude, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Category, f.Name, f.Phone, f.Address, f.Latitude, f.Longitude, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting facility: %w", err)
	}
	f.ID, _ = res.LastInsertId()
	return nil
}

func (s *SQLiteDB) ListByCategory(ctx context.Context, category models.Category) ([]Facility, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, name, phone, address, latitude, longitude, updated_at
		 FROM facilities WHERE category = ? ORDER BY name`, category)
	if err != nil {
		return nil, fmt.Errorf("error querying facilities: %w", err)
	}
	return scanFacilities(rows)
}

func (s *SQLiteDB) ListAllFacilities(ctx context.Context) ([]Facility, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, name, phone, address, latitude, longitude, updated_at
		 FROM facilities ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("error querying facilities: %w", err)
	}
	return scanFacilities(rows)
}

func scanFacilities(rows *sql.Rows) ([]Facility, error) {
	defer rows.Close()

	var out []Facility
	for rows.Next() {
		var f Facility
		var phone, address sql.NullString
		if err := rows.Scan(&f.ID, &f.Category, &f.Name, &phone, &address, &f.Latitude, &f.Longitude, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning facility row: %w", err)
		}
		f.Phone = phone.String
		f.Address = address.String
		out = append(out, f)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the full facility dataset in one transaction, used by
// the hot-reload path.
func (s *SQLiteDB) ReplaceAll(ctx context.Context, facilities []Facility) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM facilities`); err != nil {
		return fmt.Errorf("error clearing facilities: %w", err)
	}
	now := time.Now()
	for i := range facilities {
		f := &facilities[i]
		if f.UpdatedAt.IsZero() {
			f.UpdatedAt = now
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO facilities (category, name, phone, address, latitude, longitude, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.Category, f.Name, f.Phone, f.Address, f.Latitude, f.Longitude, f.UpdatedAt); err != nil {
			return fmt.Errorf("error inserting facility: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteDB) CountFacilities(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM facilities`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting facilities: %w", err)
	}
	return n, nil
}

func (s *SQLiteDB) AddEvent(ctx context.Context, e *models.DispatchEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatch_events (id, category, subservice, urgency, facility, latitude, longitude, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Category, e.Subservice, e.Urgency, e.Facility, e.Latitude, e.Longitude, e.Status, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting dispatch event: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListEvents(ctx context.Context, opts EventFilter) ([]models.DispatchEvent, error) {
	query := `SELECT id, category, subservice, urgency, facility, latitude, longitude, status, created_at
		 FROM dispatch_events WHERE 1=1`
	var args []any
	if opts.Category != nil {
		query += ` AND category = ?`
		args = append(args, *opts.Category)
	}
	if opts.Since != nil {
		query += ` AND created_at >= ?`
		args = append(args, *opts.Since)
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying dispatch events: %w", err)
	}
	defer rows.Close()

	var out []models.DispatchEvent
	for rows.Next() {
		var e models.DispatchEvent
		var facility sql.NullString
		if err := rows.Scan(&e.ID, &e.Category, &e.Subservice, &e.Urgency, &facility, &e.Latitude, &e.Longitude, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning dispatch event row: %w", err)
		}
		e.Facility = facility.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
