package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ReadJSONFile loads path into a value of type T. A missing file,
// blank file, or corrupt JSON all yield the fallback together with the
// error, so callers can log and keep serving; the data files here are
// hand-edited and a bad edit must never take the site down.
func ReadJSONFile[T any](path string, fallback T) (T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fallback, fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// WriteJSONFile rewrites path wholesale with two-space indented JSON.
// Last write wins; there is no journaling here.
func WriteJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EnsureFile creates path with initial content when it does not exist.
func EnsureFile(path string, initial []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, initial, 0o644)
}
