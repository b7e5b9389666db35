// Package jsonstore implements the whole-file JSON collection engine
// behind the file storage backend. Each collection lives in a single
// <name>.json file holding an array of records; every operation loads the
// full array, and mutations rewrite the full file.
//
// A per-collection mutex serializes access, so two requests mutating the
// same collection in one process cannot clobber each other's writes.
// Cross-process writers are still unsynchronized.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a file-backed list of records of type T.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// New returns a Collection stored at dir/<name>.json. The file is created
// lazily on the first mutation.
func New[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name+".json")}
}

// load reads and decodes the backing file. A missing or malformed file
// degrades to an empty collection rather than failing the request.
func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// All returns every record in the collection.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Mutate runs fn over the current records under the collection lock and
// rewrites the file with whatever fn returns. If fn returns an error the
// file is left untouched.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	return c.save(items)
}
