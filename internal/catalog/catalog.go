// Package catalog maps banking purposes to the documents a submission must
// contain. The catalog is loaded once at startup, validated eagerly, and
// read-only afterwards, so it is shared safely across concurrent requests.
package catalog

import (
	"fmt"

	"kycgate/pkg/domain"
	dErrors "kycgate/pkg/domain-errors"
)

// Requirement is one catalog entry: a document kind the purpose expects,
// whether at least one accepted document of that kind is mandatory, and the
// minimum per-document confidence the evaluator will accept.
type Requirement struct {
	Kind          domain.DocumentKind `yaml:"kind" json:"kind"`
	Mandatory     bool                `yaml:"mandatory" json:"mandatory"`
	MinConfidence float64             `yaml:"min_confidence" json:"min_confidence"`
}

// ConfigError reports a malformed catalog entry. It is fatal at load time
// and can never surface at request time.
type ConfigError struct {
	Purpose domain.Purpose
	Kind    domain.DocumentKind
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog config: purpose %q kind %q: %s", e.Purpose, e.Kind, e.Reason)
}

// Catalog resolves purposes to their ordered requirement sets.
type Catalog struct {
	entries map[domain.Purpose][]Requirement
}

// New validates the given purpose mappings and returns a Catalog.
// Validation rules: kinds must belong to the closed set, min_confidence must
// be within [0,1], mandatory entries must have min_confidence > 0, and a
// kind may appear at most once per purpose.
func New(entries map[domain.Purpose][]Requirement) (*Catalog, error) {
	for purpose, reqs := range entries {
		seen := make(map[domain.DocumentKind]struct{}, len(reqs))
		for _, req := range reqs {
			if !req.Kind.IsValid() {
				return nil, &ConfigError{Purpose: purpose, Kind: req.Kind, Reason: "unknown document kind"}
			}
			if req.MinConfidence < 0 || req.MinConfidence > 1 {
				return nil, &ConfigError{Purpose: purpose, Kind: req.Kind, Reason: "min_confidence outside [0,1]"}
			}
			if req.Mandatory && req.MinConfidence == 0 {
				return nil, &ConfigError{Purpose: purpose, Kind: req.Kind, Reason: "mandatory entry requires min_confidence > 0"}
			}
			if _, dup := seen[req.Kind]; dup {
				return nil, &ConfigError{Purpose: purpose, Kind: req.Kind, Reason: "duplicate kind for purpose"}
			}
			seen[req.Kind] = struct{}{}
		}
	}
	return &Catalog{entries: entries}, nil
}

// RequirementsFor returns the ordered requirement set for a purpose.
// Unregistered purposes fail with an unknown-purpose error before any
// processing starts. The returned slice is a copy; callers cannot mutate
// catalog state.
func (c *Catalog) RequirementsFor(purpose domain.Purpose) ([]Requirement, error) {
	reqs, ok := c.entries[purpose]
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnknownPurpose, "no requirements registered for purpose: "+purpose.String())
	}
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out, nil
}

// Purposes lists the registered purposes. Order is unspecified.
func (c *Catalog) Purposes() []domain.Purpose {
	out := make([]domain.Purpose, 0, len(c.entries))
	for p := range c.entries {
		out = append(out, p)
	}
	return out
}

// Lookup returns the requirement for a specific kind under a purpose, if
// the catalog lists one. The evaluator uses this to pick the minimum
// confidence for a classified document.
func (c *Catalog) Lookup(purpose domain.Purpose, kind domain.DocumentKind) (Requirement, bool) {
	for _, req := range c.entries[purpose] {
		if req.Kind == kind {
			return req, true
		}
	}
	return Requirement{}, false
}
