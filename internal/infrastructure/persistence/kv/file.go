package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/coursecompass/compass/internal/domain/profile"
)

// File is a Store persisted as a single JSON document on disk. The whole map
// is rewritten on every mutation; writes go through a temp file plus rename
// so a crash never leaves a half-written document. An unreadable or
// unparseable file is treated as empty, not as an error.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenFile loads (or initializes) the store at path.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("kv: reading %s: %w", path, err)
	}

	// Malformed persisted data is treated as absent.
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err == nil && data != nil {
		f.data = data
	}
	return f, nil
}

// Get returns the value for key, or profile.ErrKeyNotFound.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, profile.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set writes the value for key and flushes the document to disk.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	f.data[key] = cp
	return f.flush()
}

// Remove deletes the key and flushes; absent keys are ignored.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// flush writes the document atomically. Caller holds the lock.
func (f *File) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("kv: encoding store: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("kv: creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".compass-*")
	if err != nil {
		return fmt.Errorf("kv: creating temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("kv: replacing %s: %w", f.path, err)
	}
	return nil
}

var _ profile.Store = (*File)(nil)
