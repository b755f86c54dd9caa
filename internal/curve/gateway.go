package curve

import (
	"context"
	"fmt"

	"github.com/drakos74/curve-fit/infra/config"
	"github.com/drakos74/curve-fit/internal/storage"
	"github.com/drakos74/curve-fit/internal/storage/file/json"
	"github.com/drakos74/curve-fit/internal/storage/sqlite"
)

// NewGateway creates the storage backend described by the config.
func NewGateway(ctx context.Context, cfg config.Storage) (storage.Gateway, error) {
	switch storage.Type(cfg.Type) {
	case storage.SQLite:
		g, err := sqlite.NewGateway(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return g, nil
	case storage.File:
		g, err := json.NewGateway(cfg.Path)
		if err != nil {
			return nil, err
		}
		return g, nil
	case storage.Void:
		return storage.NewVoidGateway(), nil
	default:
		return nil, fmt.Errorf("storage type '%s': %w", cfg.Type, storage.UnknownBackendErr)
	}
}
