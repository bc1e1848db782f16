package timeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tracklinehq/trackline/pkg/errors"
)

// Source supplies the materialized item sequence for one timeline instance.
// The engine reads it once at initialization and never re-fetches.
type Source interface {
	Items() []Item
}

// StaticSource is a Source backed by an in-memory slice.
type StaticSource []Item

// Items returns the item slice.
func (s StaticSource) Items() []Item { return s }

// itemsFile is the on-disk shape of a content manifest.
type itemsFile struct {
	Items []Item `toml:"items" yaml:"items"`
}

// LoadItems reads an ordered item sequence from a TOML or YAML manifest.
// The format is chosen by file extension (.toml, .yaml, .yml).
//
// An empty item list is not an error here; the engine decides what an empty
// sequence means (initialization aborts for that instance).
func LoadItems(path string) ([]Item, error) {
	if err := errors.ValidateContentPath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read content %s", path)
	}

	var f itemsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported content format %q (want .toml, .yaml, or .yml)", ext)
	}

	for i, item := range f.Items {
		if item.Title == "" {
			return nil, errors.New(errors.ErrCodeInvalidContent, "item %d has no title", i)
		}
	}

	return f.Items, nil
}
