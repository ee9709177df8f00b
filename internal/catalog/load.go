package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/lexicon.json data/techniques.json data/resources.json
var defaultData embed.FS

const (
	lexiconFile    = "lexicon.json"
	techniquesFile = "techniques.json"
	resourcesFile  = "resources.json"
)

// Load builds the catalog from the embedded default data files.
func Load() (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		return defaultData.ReadFile("data/" + name)
	}
	return load(read)
}

// LoadDir builds the catalog from JSON files in dir. Any file missing from
// dir falls back to the embedded default, so operators can override a single
// registry without copying the others.
func LoadDir(dir string) (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			return defaultData.ReadFile("data/" + name)
		}
		return data, err
	}
	return load(read)
}

func load(read func(name string) ([]byte, error)) (*Catalog, error) {
	var lex LexiconFile
	if err := parseFile(read, lexiconFile, &lex); err != nil {
		return nil, err
	}
	if errs := ValidateLexicon(&lex); len(errs) > 0 {
		return nil, fmt.Errorf("validating %s: %w", lexiconFile, errors.Join(errs...))
	}

	var tech TechniquesFile
	if err := parseFile(read, techniquesFile, &tech); err != nil {
		return nil, err
	}
	if errs := ValidateTechniques(&tech); len(errs) > 0 {
		return nil, fmt.Errorf("validating %s: %w", techniquesFile, errors.Join(errs...))
	}

	var res ResourcesFile
	if err := parseFile(read, resourcesFile, &res); err != nil {
		return nil, err
	}
	if errs := ValidateResources(&res); len(errs) > 0 {
		return nil, fmt.Errorf("validating %s: %w", resourcesFile, errors.Join(errs...))
	}

	return build(&lex, &tech, &res), nil
}

func parseFile(read func(name string) ([]byte, error), name string, v any) error {
	data, err := read(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
