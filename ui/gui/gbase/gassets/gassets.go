package gassets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("asset not found")

// Dir resolves asset names against one root directory.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Root() string {
	return d.root
}

func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, name)
}

func (d *Dir) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(d.Path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, d.Path(name))
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d *Dir) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(d.Path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, d.Path(name))
	}
	return data, err
}

type entry[T any] struct {
	value T
	err   error
}

// Cache keeps one loaded value per asset name for the whole session.
// Failed loads are remembered too, so a missing file is reported once.
type Cache[T any] struct {
	load    func(name string) (T, error)
	release func(T)
	items   map[string]entry[T]
}

func NewCache[T any](load func(name string) (T, error), release func(T)) *Cache[T] {
	return &Cache[T]{load: load, release: release, items: make(map[string]entry[T])}
}

// Get returns the cached value; fresh reports whether this call did the load.
func (c *Cache[T]) Get(name string) (value T, fresh bool, err error) {
	if e, ok := c.items[name]; ok {
		return e.value, false, e.err
	}
	v, err := c.load(name)
	c.items[name] = entry[T]{value: v, err: err}
	return v, true, err
}

func (c *Cache[T]) Len() int {
	return len(c.items)
}

// Close releases every successfully loaded value and empties the cache.
func (c *Cache[T]) Close() {
	for name, e := range c.items {
		if e.err == nil && c.release != nil {
			c.release(e.value)
		}
		delete(c.items, name)
	}
}
