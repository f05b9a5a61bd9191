// Package library persists named L-system definitions on disk.
//
// Each entry is one YAML file under the base directory. Only rule set
// configurations are stored, never rendered drawings.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/san-kum/lsys/internal/config"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.baseDir, name+".yaml")
}

// Save writes cfg under name, overwriting any previous entry.
func (s *Store) Save(name string, cfg *config.Config) error {
	if name == "" {
		return fmt.Errorf("library: entry name is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	saved := *cfg
	saved.Name = name
	return config.Save(s.path(name), &saved)
}

// Load reads one entry by name.
func (s *Store) Load(name string) (*config.Config, error) {
	cfg, err := config.Load(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("library: no entry named %q", name)
		}
		return nil, err
	}
	return cfg, nil
}

// List returns every readable entry, sorted by name. Unreadable files are
// skipped rather than failing the listing.
func (s *Store) List() ([]*config.Config, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*config.Config{}, nil
		}
		return nil, err
	}
	configs := make([]*config.Config, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		cfg, err := config.Load(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		if cfg.Name == "" {
			cfg.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })
	return configs, nil
}

// Remove deletes one entry by name.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("library: no entry named %q", name)
	}
	return err
}
