package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"lawmitra-backend/models"
)

// ConfigStore persists the single active backend configuration. The store
// never expires entries on its own; only explicit user actions mutate it.
type ConfigStore interface {
	// Get returns the current config; a zero value means unconfigured
	Get() (models.BackendConfig, error)

	// Set replaces the current config
	Set(cfg models.BackendConfig) error

	// Clear removes the config entirely
	Clear() error
}

// ConfigStoreType selects the persistence scope of the credential store
type ConfigStoreType string

const (
	// ConfigStoreMemory keeps the config for the process lifetime only
	ConfigStoreMemory ConfigStoreType = "memory"
	// ConfigStoreFile keeps the config across restarts in a local file
	ConfigStoreFile ConfigStoreType = "file"
)

// NewConfigStoreFromEnv creates a config store from environment variables.
// CONFIG_STORE picks the scope (memory by default); CONFIG_STORE_PATH sets
// the file location for the file scope.
func NewConfigStoreFromEnv() (ConfigStore, error) {
	storeType := os.Getenv("CONFIG_STORE")
	if storeType == "" {
		storeType = string(ConfigStoreMemory)
	}

	switch ConfigStoreType(storeType) {
	case ConfigStoreMemory:
		return NewMemoryConfigStore(), nil
	case ConfigStoreFile:
		path := os.Getenv("CONFIG_STORE_PATH")
		if path == "" {
			path = "./data/backend_config.json"
		}
		return NewFileConfigStore(path)
	default:
		return nil, fmt.Errorf("unknown config store type: %s", storeType)
	}
}

// MemoryConfigStore holds the config in process memory, mirroring
// session-scoped storage: nothing survives a restart.
type MemoryConfigStore struct {
	mu  sync.RWMutex
	cfg models.BackendConfig
	set bool
}

// NewMemoryConfigStore creates an empty in-memory store
func NewMemoryConfigStore() *MemoryConfigStore {
	return &MemoryConfigStore{}
}

// Get returns the stored config
func (s *MemoryConfigStore) Get() (models.BackendConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return models.BackendConfig{}, nil
	}
	return s.cfg, nil
}

// Set replaces the stored config
func (s *MemoryConfigStore) Set(cfg models.BackendConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.set = true
	return nil
}

// Clear removes the stored config
func (s *MemoryConfigStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = models.BackendConfig{}
	s.set = false
	return nil
}

// FileConfigStore persists the config as JSON in a single file, mirroring
// device-scoped storage: the credential survives restarts until cleared.
// The file is written with owner-only permissions since it holds a secret.
type FileConfigStore struct {
	mu   sync.Mutex
	path string
}

// NewFileConfigStore creates a file-backed store, ensuring the directory
// exists
func NewFileConfigStore(path string) (*FileConfigStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &FileConfigStore{path: path}, nil
}

// Get reads the config from disk; a missing file means unconfigured
func (s *FileConfigStore) Get() (models.BackendConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.BackendConfig{}, nil
		}
		return models.BackendConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg models.BackendConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.BackendConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Set writes the config to disk
func (s *FileConfigStore) Set(cfg models.BackendConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Clear deletes the config file
func (s *FileConfigStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete config: %w", err)
	}
	return nil
}
