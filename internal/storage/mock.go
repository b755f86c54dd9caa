package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/drakos74/curve-fit/internal/model"
)

// MockGateway keeps the rows in memory.
type MockGateway struct {
	mutex *sync.RWMutex
	Rows  []model.Row
	// StoreErr and LoadErr are returned by the corresponding calls when set.
	StoreErr error
	LoadErr  error
}

// NewMockGateway creates a new in-memory storage
func NewMockGateway() *MockGateway {
	return &MockGateway{
		mutex: new(sync.RWMutex),
		Rows:  make([]model.Row, 0),
	}
}

func (m *MockGateway) Store(ctx context.Context, samples []model.Sample, curveType, equation string) error {
	if m.StoreErr != nil {
		return fmt.Errorf("%s: %w", m.StoreErr.Error(), CouldNotStoreErr)
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Rows = append(m.Rows, model.NewRows(samples, curveType, equation)...)
	return nil
}

func (m *MockGateway) LoadAll(ctx context.Context) ([]model.Sample, error) {
	if m.LoadErr != nil {
		return nil, fmt.Errorf("%s: %w", m.LoadErr.Error(), CouldNotLoadErr)
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	samples := make([]model.Sample, len(m.Rows))
	for i, row := range m.Rows {
		samples[i] = model.Sample{X: row.X, Y: row.Y}
	}
	return samples, nil
}
