package storage

import (
	"context"
	"errors"

	"github.com/drakos74/curve-fit/internal/model"
)

// Type is the kind of storage backend.
type Type string

const (
	// SQLite stores the fits in a sqlite database file
	SQLite Type = "sqlite"
	// File stores the fits as json lines in a plain file
	File Type = "file"
	// Void drops everything
	Void Type = "void"
)

var (
	UnknownBackendErr = errors.New("unknown backend")
	CouldNotStoreErr  = errors.New("could not store")
	CouldNotLoadErr   = errors.New("could not load")
)

// Gateway persists the fitted samples and gives them back for display.
type Gateway interface {
	// Store appends one row per sample, repeating the curve type and equation on each of them.
	Store(ctx context.Context, samples []model.Sample, curveType, equation string) error
	// LoadAll returns the stored samples of all curve types in storage order.
	LoadAll(ctx context.Context) ([]model.Sample, error)
}

// Closer is a gateway holding resources that need to be released.
type Closer interface {
	Gateway
	Close() error
}
