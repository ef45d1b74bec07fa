// Package seed supplies the fixed item collection used to initialize and reset
// the item store.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
)

//go:embed items.json
var embeddedItems []byte

var ErrDuplicateID = errors.New("seed contains duplicate item id")

// Source is a read-only, ordered list of seed items. Every call to Items
// returns an independent deep copy.
type Source struct {
	items []domain.Item
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultErr    error
)

// Default returns the embedded seed, parsed once per process.
func Default() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = FromJSON(embeddedItems)
	})
	return defaultSource, defaultErr
}

// LoadFile reads a seed override. .yaml and .yml files are decoded as YAML,
// anything else as JSON.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

func FromJSON(data []byte) (*Source, error) {
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode json seed: %w", err)
	}
	return New(items)
}

func FromYAML(data []byte) (*Source, error) {
	var items []domain.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode yaml seed: %w", err)
	}
	return New(items)
}

// New copies items into a Source, rejecting duplicate ids.
func New(items []domain.Item) (*Source, error) {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return &Source{items: domain.CloneItems(items)}, nil
}

func (s *Source) Items() []domain.Item {
	return domain.CloneItems(s.items)
}

func (s *Source) Len() int {
	return len(s.items)
}
