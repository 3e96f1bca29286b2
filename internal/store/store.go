// Package store persists envelopes, income sources, and allocations in
// SQLite. The engine itself never touches the database; this is the external
// envelope store and Save collaborator it reads from and writes back to.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"budgetmate/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed budget persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the budget database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the database location inside the given data dir.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "budgetmate.db")
}

// LoadIncomeSources reads all income sources in funding-rank order.
func (s *Store) LoadIncomeSources() ([]model.IncomeSource, error) {
	rows, err := s.db.Query(`SELECT id, name, amount, frequency, active, rank, next_pay_date
		FROM income_sources ORDER BY rank, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sources []model.IncomeSource
	for rows.Next() {
		var src model.IncomeSource
		var freq string
		var active int
		var nextPay sql.NullString

		if err := rows.Scan(&src.ID, &src.Name, &src.Amount, &freq, &active, &src.Rank, &nextPay); err != nil {
			return nil, err
		}
		src.Frequency = model.ParseFrequency(freq)
		src.Active = active != 0
		if nextPay.Valid && nextPay.String != "" {
			src.NextPayDate, _ = time.Parse("2006-01-02", nextPay.String)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// LoadEnvelopes reads all envelopes with their current allocations.
func (s *Store) LoadEnvelopes() ([]model.Envelope, error) {
	rows, err := s.db.Query(`SELECT id, name, target_amount, frequency, priority, subtype, due_date, tracking_only
		FROM envelopes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var envelopes []model.Envelope
	for rows.Next() {
		var env model.Envelope
		var freq, priority, subtype string
		var dueDate sql.NullString
		var trackingOnly int

		err := rows.Scan(&env.ID, &env.Name, &env.TargetAmount, &freq, &priority, &subtype, &dueDate, &trackingOnly)
		if err != nil {
			return nil, err
		}
		env.Frequency = model.ParseFrequency(freq)
		env.Priority = model.ParsePriority(priority)
		env.Subtype = model.ParseSubtype(subtype)
		if dueDate.Valid {
			env.DueDate = dueDate.String
		}
		env.TrackingOnly = trackingOnly != 0
		env.Allocations = make(map[string]float64)
		envelopes = append(envelopes, env)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load allocations
	allocRows, err := s.db.Query(`SELECT envelope_id, income_source_id, amount FROM allocations`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = allocRows.Close() }()

	// Build envelope index for fast lookup
	envIdx := make(map[string]int)
	for i, env := range envelopes {
		envIdx[env.ID] = i
	}

	for allocRows.Next() {
		var envID, srcID string
		var amount float64
		if err := allocRows.Scan(&envID, &srcID, &amount); err != nil {
			return nil, err
		}
		if i, ok := envIdx[envID]; ok {
			envelopes[i].Allocations[srcID] = amount
		}
	}
	return envelopes, allocRows.Err()
}

// SaveIncomeSource inserts or replaces an income source.
func (s *Store) SaveIncomeSource(src model.IncomeSource) error {
	active := 0
	if src.Active {
		active = 1
	}
	nextPay := ""
	if !src.NextPayDate.IsZero() {
		nextPay = src.NextPayDate.Format("2006-01-02")
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO income_sources
		(id, name, amount, frequency, active, rank, next_pay_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		src.ID, src.Name, src.Amount, string(src.Frequency), active, src.Rank, nextPay,
	)
	return err
}

// SaveEnvelope inserts or replaces an envelope record. Allocations are
// written separately via ReplaceAllocations.
func (s *Store) SaveEnvelope(env model.Envelope) error {
	trackingOnly := 0
	if env.TrackingOnly {
		trackingOnly = 1
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO envelopes
		(id, name, target_amount, frequency, priority, subtype, due_date, tracking_only)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		env.ID, env.Name, env.TargetAmount, string(env.Frequency),
		string(env.Priority), string(env.Subtype), env.DueDate, trackingOnly,
	)
	return err
}

// ReplaceAllocations swaps out one envelope's allocation map wholesale.
// This is also the manual-override write path: no capacity check happens
// here, the validator catches over-commitment before the next save.
func (s *Store) ReplaceAllocations(envelopeID string, allocations map[string]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM allocations WHERE envelope_id = ?", envelopeID); err != nil {
		return err
	}

	for srcID, amount := range allocations {
		if amount <= 0 {
			continue
		}
		_, err := tx.Exec(`INSERT INTO allocations (envelope_id, income_source_id, amount)
			VALUES (?, ?, ?)`, envelopeID, srcID, amount)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveAllocations persists every envelope's allocation map, one write per
// envelope. A failed write leaves earlier envelopes committed; the caller
// decides whether to retry or re-offer the save.
func (s *Store) SaveAllocations(envelopes []model.Envelope) error {
	for _, env := range envelopes {
		if err := s.ReplaceAllocations(env.ID, env.Allocations); err != nil {
			return fmt.Errorf("saving allocations for %s: %w", env.Name, err)
		}
	}
	return nil
}

// DeleteEnvelope removes an envelope and its allocations.
func (s *Store) DeleteEnvelope(id string) error {
	_, err := s.db.Exec("DELETE FROM envelopes WHERE id = ?", id)
	return err
}

// Empty reports whether the store has no envelopes and no income sources.
func (s *Store) Empty() (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM envelopes) + (SELECT COUNT(*) FROM income_sources)`).Scan(&n)
	return n == 0, err
}
