package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kycgate/pkg/domain"
)

// fileSchema is the on-disk catalog shape:
//
//	purposes:
//	  account_opening_savings:
//	    - kind: pan
//	      mandatory: true
//	      min_confidence: 0.75
type fileSchema struct {
	Purposes map[string][]Requirement `yaml:"purposes"`
}

// Load reads a catalog from a YAML file. Purposes and kinds are validated
// eagerly so malformed config fails the process at startup, never at
// request time.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Purposes) == 0 {
		return nil, fmt.Errorf("catalog %s: no purposes defined", path)
	}

	entries := make(map[domain.Purpose][]Requirement, len(file.Purposes))
	for rawPurpose, reqs := range file.Purposes {
		purpose, err := domain.ParsePurpose(rawPurpose)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		entries[purpose] = reqs
	}

	return New(entries)
}
