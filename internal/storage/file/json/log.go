package json

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/drakos74/curve-fit/internal/model"
	"github.com/drakos74/curve-fit/internal/storage"
)

const (
	filename = "curve-data.log"
	// maxLine is the longest row line we accept when reading back
	maxLine = 1024 * 1024
)

// Gateway appends the rows as json lines to a single log file.
type Gateway struct {
	mutex *sync.Mutex
	path  string
}

// NewGateway creates a file storage under the given folder.
func NewGateway(folder string) (*Gateway, error) {
	// check if filepath exists
	info, err := os.Stat(folder)
	if err != nil {
		err := os.MkdirAll(folder, os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("could not make dir: %s: %w", folder, err)
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path given is not a directory: %s", folder)
	}
	return &Gateway{
		mutex: new(sync.Mutex),
		path:  filepath.Join(folder, filename),
	}, nil
}

// Path returns the log file path.
func (g *Gateway) Path() string {
	return g.path
}

func (g *Gateway) Store(ctx context.Context, samples []model.Sample, curveType, equation string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), storage.CouldNotStoreErr)
	}

	// encode everything first, so that a failing row does not leave half a fit behind
	buf := make([]byte, 0)
	for _, row := range model.NewRows(samples, curveType, equation) {
		b, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("could not encode row '%+v': %w", row, storage.CouldNotStoreErr)
		}
		buf = append(append(buf, b...), '\n')
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	f, err := os.OpenFile(g.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file '%s': %s: %w", g.path, err.Error(), storage.CouldNotStoreErr)
	}
	defer f.Close()

	if _, err = f.Write(buf); err != nil {
		return fmt.Errorf("could not write log file '%s': %s: %w", g.path, err.Error(), storage.CouldNotStoreErr)
	}
	return nil
}

func (g *Gateway) LoadAll(ctx context.Context) ([]model.Sample, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	samples := make([]model.Sample, 0)

	f, err := os.Open(g.path)
	if errors.Is(err, os.ErrNotExist) {
		return samples, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not read file '%s': %s: %w", g.path, err.Error(), storage.CouldNotLoadErr)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", err.Error(), storage.CouldNotLoadErr)
		}
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var row model.Row
		if err := json.Unmarshal(b, &row); err != nil {
			return nil, fmt.Errorf("could not decode line %d '%s': %s: %w", line, string(b), err.Error(), storage.CouldNotLoadErr)
		}
		samples = append(samples, model.Sample{X: row.X, Y: row.Y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan file '%s': %s: %w", g.path, err.Error(), storage.CouldNotLoadErr)
	}
	return samples, nil
}
