package localcache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Keys used by the local storage driver. They match the keys the
// original browser build of the app wrote, so an exported cache can
// be carried over as-is.
const (
	KeyUser          = "swapbook_user"
	KeyObjects       = "swapbook_objects"
	KeySchemaVersion = "swapbook_schema_version"
)

// Store is a file-backed key-value cache holding JSON-serialized
// values. Each Set rewrites the whole file; the cached data set is
// small and written wholesale, like the browser storage it replaces.
type Store struct {
	path  string
	mutex sync.Mutex
	data  map[string]json.RawMessage
}

func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}

	return s, nil
}

// Get unmarshals the value stored under key into out. Reports whether
// the key was present.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mutex.Lock()
	raw, ok := s.data[key]
	s.mutex.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set serializes value under key and flushes the file.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = raw
	return s.flush()
}

// flush writes to a temp file and renames so a crash mid-write never
// leaves a truncated cache. Caller must hold the mutex.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
