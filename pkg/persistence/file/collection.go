package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/xeipuuv/gojsonschema"
)

// snapshotSchema is the shape every persisted collection must satisfy:
// an array of objects, each carrying a string id. Snapshots that fail
// validation are refused rather than partially loaded.
const snapshotSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id": {"type": "string", "minLength": 1}
    }
  }
}`

// collection is a whole-collection JSON snapshot keyed by a logical
// collection name. The full record list is loaded once and rewritten to
// disk on every mutation, mirroring the snapshot-per-collection model of
// the original system.
type collection[T any] struct {
	mu      sync.RWMutex
	root    string
	name    string
	schema  *gojsonschema.Schema
	records []T
	loaded  bool
}

func newCollection[T any](root, name string) (*collection[T], error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(snapshotSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile snapshot schema: %w", err)
	}

	return &collection[T]{
		root:   root,
		name:   name,
		schema: schema,
	}, nil
}

func (c *collection[T]) path() string {
	return filepath.Join(c.root, c.name+".json")
}

// load reads and validates the snapshot file. A missing file is an empty
// collection. Callers must hold c.mu.
func (c *collection[T]) load() error {
	if c.loaded {
		return nil
	}

	body, err := os.ReadFile(c.path())
	if err != nil {
		if os.IsNotExist(err) {
			c.records = nil
			c.loaded = true

			return nil
		}

		return fmt.Errorf("failed to read collection %s: %w", c.name, err)
	}

	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return persistence.NewRepositoryError("Load", c.name, "", persistence.ErrCorruptSnapshot)
	}

	if !result.Valid() {
		return persistence.NewRepositoryError("Load", c.name, "", persistence.ErrCorruptSnapshot)
	}

	var records []T

	err = json.Unmarshal(body, &records)
	if err != nil {
		return fmt.Errorf("failed to unmarshal collection %s: %w", c.name, err)
	}

	c.records = records
	c.loaded = true

	return nil
}

// flush rewrites the whole snapshot file. Callers must hold c.mu.
func (c *collection[T]) flush() error {
	err := os.MkdirAll(c.root, 0750)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	records := c.records
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", c.name, err)
	}

	return os.WriteFile(c.path(), data, 0600)
}

// snapshot returns a copy of the current record list.
func (c *collection[T]) snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(); err != nil {
		return nil, err
	}

	out := make([]T, len(c.records))
	copy(out, c.records)

	return out, nil
}

// mutate applies fn to the record list and flushes the result. fn
// returning an error leaves the collection untouched.
func (c *collection[T]) mutate(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(); err != nil {
		return err
	}

	next, err := fn(c.records)
	if err != nil {
		return err
	}

	previous := c.records
	c.records = next

	if err := c.flush(); err != nil {
		c.records = previous

		return err
	}

	return nil
}
