package language

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tableFS embed.FS

// ErrUnknownLanguage is returned for codes with no table.
var ErrUnknownLanguage = errors.New("unknown language")

var (
	mu sync.RWMutex
	// tables maps language codes to their validated tables
	tables = map[string]*Table{}
	// loadErrors keeps builtin tables that failed to decode or validate so
	// that building their researcher fails instead of silently disappearing
	loadErrors = map[string]error{}
)

func init() {
	entries, err := tableFS.ReadDir("tables")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

		data, err := tableFS.ReadFile(path.Join("tables", entry.Name()))
		if err != nil {
			loadErrors[code] = err
			continue
		}

		t, err := decodeYAML(data)
		if err != nil {
			loadErrors[code] = err
			continue
		}
		tables[t.Language] = t
	}
}

func decodeYAML(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeTOML(data []byte) (*Table, error) {
	var t Table
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load returns the table for code.
func Load(code string) (*Table, error) {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := tables[code]; ok {
		return t, nil
	}
	if err, ok := loadErrors[code]; ok {
		return nil, fmt.Errorf("language table %s: %w", code, err)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
}

// Available returns the codes of all loaded tables, sorted.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()

	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Register adds or replaces a table. It is meant for custom language packs
// loaded at startup, before analysis begins.
func Register(t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	tables[t.Language] = t
	delete(loadErrors, t.Language)
	return nil
}

// LoadFile reads a custom language pack from a .yaml, .yml or .toml file.
func LoadFile(file string) (*Table, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported language pack format: %s", file)
	}
}
