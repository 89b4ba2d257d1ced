package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// KeyChangeType classifies a difference between a user file and the defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key the user file lacks.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRemoved is a user key dockyard no longer reads.
	KeyChangeRemoved
)

// KeyChange is one detected difference.
type KeyChange struct {
	Type  KeyChangeType
	Key   string
	Value string
}

// Migrator compares a config file with the built-in defaults.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
	path         string
}

// NewMigrator creates a Migrator for the config file at path.
func NewMigrator(path string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{defaultViper: v, path: path}
}

// DetectChanges lists keys to add and keys no longer read. A missing file has
// no changes.
func (m *Migrator) DetectChanges() ([]KeyChange, error) {
	if _, err := os.Stat(m.path); os.IsNotExist(err) {
		return nil, nil
	}

	userKeys, err := m.userConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	defaultKeys := m.defaultViper.AllKeys()
	defaultKeySet := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		defaultKeySet[k] = true
	}

	var changes []KeyChange
	for _, key := range defaultKeys {
		if _, ok := userKeys[key]; ok {
			continue
		}
		changes = append(changes, KeyChange{
			Type:  KeyChangeAdded,
			Key:   key,
			Value: formatValue(m.defaultViper.Get(key)),
		})
	}
	for key, value := range userKeys {
		if defaultKeySet[key] || isUserDataSection(key) {
			continue
		}
		changes = append(changes, KeyChange{
			Type:  KeyChangeRemoved,
			Key:   key,
			Value: formatValue(value),
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Type != changes[j].Type {
			return changes[i].Type < changes[j].Type
		}
		return changes[i].Key < changes[j].Key
	})
	return changes, nil
}

// Migrate rewrites the file with every default key filled in. Keys dockyard no
// longer reads are dropped. It returns the applied changes.
func (m *Migrator) Migrate() ([]KeyChange, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	mgr, err := NewManagerForFile(m.path)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	if err := WriteConfig(mgr.Get(), m.path, true); err != nil {
		return nil, err
	}
	return changes, nil
}

func (m *Migrator) userConfigKeys() (map[string]any, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	result := make(map[string]any)
	flattenMap(raw, "", result)
	return result, nil
}

// flattenMap recursively flattens a nested map to dot-notation keys with values.
func flattenMap(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}

		val, ok := v.(map[string]any)
		if ok && !isUserDataSection(key) {
			flattenMap(val, key, result)
			continue
		}
		result[key] = v
	}
}

// isUserDataSection reports keys compared as a whole rather than key by key.
func isUserDataSection(key string) bool {
	return key == "fixture"
}

// formatValue returns a human-readable string representation of a value.
func formatValue(value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case map[string]any:
		return fmt.Sprintf("{%d entries}", len(v))
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 0 {
			return "[]"
		}
		return fmt.Sprintf("[%d items]", rv.Len())
	}
	return fmt.Sprintf("%v", value)
}
