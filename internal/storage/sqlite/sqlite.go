// Package sqlite stores the fitted samples in a sqlite database.
// The table layout is one row per sample: X REAL, Y REAL, CurveType TEXT, FittedEquation TEXT.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/curve-fit/internal/model"
	"github.com/drakos74/curve-fit/internal/storage"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

const (
	driver = "sqlite"

	schema     = `CREATE TABLE IF NOT EXISTS CurveData (X REAL, Y REAL, CurveType TEXT, FittedEquation TEXT)`
	insertRow  = `INSERT INTO CurveData (X, Y, CurveType, FittedEquation) VALUES (?, ?, ?, ?)`
	selectRows = `SELECT X, Y FROM CurveData ORDER BY rowid`
)

// Gateway is the sqlite storage.
type Gateway struct {
	db   *sql.DB
	path string
}

// NewGateway opens (or creates) the database at the given path and makes sure the table exists.
func NewGateway(ctx context.Context, path string) (*Gateway, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("could not create database directory '%s': %w", dir, err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("could not open database '%s': %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not configure database '%s': %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema in '%s': %w", path, err)
	}

	log.Info().Str("path", path).Msg("opened sqlite storage")

	return &Gateway{
		db:   db,
		path: path,
	}, nil
}

func (g *Gateway) Store(ctx context.Context, samples []model.Sample, curveType, equation string) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %s: %w", err.Error(), storage.CouldNotStoreErr)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertRow)
	if err != nil {
		return fmt.Errorf("could not prepare insert: %s: %w", err.Error(), storage.CouldNotStoreErr)
	}
	defer stmt.Close()

	for _, row := range model.NewRows(samples, curveType, equation) {
		if _, err := stmt.ExecContext(ctx, row.X, row.Y, row.CurveType, row.FittedEquation); err != nil {
			return fmt.Errorf("could not insert row '%+v': %s: %w", row, err.Error(), storage.CouldNotStoreErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit %d rows: %s: %w", len(samples), err.Error(), storage.CouldNotStoreErr)
	}
	return nil
}

func (g *Gateway) LoadAll(ctx context.Context) ([]model.Sample, error) {
	rows, err := g.db.QueryContext(ctx, selectRows)
	if err != nil {
		return nil, fmt.Errorf("could not query rows: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	defer rows.Close()

	samples := make([]model.Sample, 0)
	for rows.Next() {
		var s model.Sample
		if err := rows.Scan(&s.X, &s.Y); err != nil {
			return nil, fmt.Errorf("could not scan row: %s: %w", err.Error(), storage.CouldNotLoadErr)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate rows: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	return samples, nil
}

// Rows returns the full stored rows in storage order.
func (g *Gateway) Rows(ctx context.Context) ([]model.Row, error) {
	rows, err := g.db.QueryContext(ctx, `SELECT X, Y, CurveType, FittedEquation FROM CurveData ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("could not query rows: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	defer rows.Close()

	result := make([]model.Row, 0)
	for rows.Next() {
		var r model.Row
		if err := rows.Scan(&r.X, &r.Y, &r.CurveType, &r.FittedEquation); err != nil {
			return nil, fmt.Errorf("could not scan row: %s: %w", err.Error(), storage.CouldNotLoadErr)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate rows: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	return result, nil
}

// Close closes the underlying database.
func (g *Gateway) Close() error {
	return g.db.Close()
}
