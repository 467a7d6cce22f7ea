// Package policy holds the operator-tunable parameters of the decision
// core. The whole object is an explicit immutable input to the evaluator,
// consistency checker, and decision engine, never ambient global state, so
// staging and production policies can coexist in one process.
package policy

import (
	"fmt"

	"kycgate/pkg/domain"
)

// Evaluator tunes per-document scoring.
type Evaluator struct {
	// ValidityPenalty is subtracted from the score factor for each failed
	// format check.
	ValidityPenalty float64 `yaml:"validity_penalty"`
	// TamperPenalty is subtracted for each tamper signal reported by the
	// extraction collaborator.
	TamperPenalty float64 `yaml:"tamper_penalty"`
	// SevereSignals force document rejection regardless of score.
	SevereSignals []string `yaml:"severe_signals"`
	// WeakMargin is the band below a kind's minimum confidence in which a
	// document is WEAK rather than REJECTED.
	WeakMargin float64 `yaml:"weak_margin"`
	// DefaultMinConfidence applies to documents whose kind the purpose's
	// catalog does not list.
	DefaultMinConfidence float64 `yaml:"default_min_confidence"`
}

// Consistency tunes cross-document comparison.
type Consistency struct {
	// IncludeWeak admits WEAK documents into cross-document comparison.
	IncludeWeak bool `yaml:"include_weak"`
	// NameSimilarity is the minimum token-overlap ratio for two normalized
	// names to count as matching.
	NameSimilarity float64 `yaml:"name_similarity"`
}

// Decision tunes final adjudication.
type Decision struct {
	// ApproveThreshold is the minimum overall score for APPROVED.
	ApproveThreshold float64 `yaml:"approve_threshold"`
	// ReviewThreshold is the minimum overall score for REVIEW_REQUIRED;
	// below it the submission is REJECTED.
	ReviewThreshold float64 `yaml:"review_threshold"`
	// Weights scale each document's contribution to the overall score by
	// the claim group of its kind. Identity documents weigh highest.
	Weights map[domain.KindCategory]float64 `yaml:"weights"`
}

// Policy is the complete tunable surface.
type Policy struct {
	Evaluator   Evaluator   `yaml:"evaluator"`
	Consistency Consistency `yaml:"consistency"`
	Decision    Decision    `yaml:"decision"`
}

// Default returns the production baseline policy.
func Default() Policy {
	return Policy{
		Evaluator: Evaluator{
			ValidityPenalty: 0.10,
			TamperPenalty:   0.25,
			SevereSignals: []string{
				"photo_substitution",
				"digital_alteration",
				"font_inconsistency_severe",
			},
			WeakMargin:           0.10,
			DefaultMinConfidence: 0.60,
		},
		Consistency: Consistency{
			IncludeWeak:    true,
			NameSimilarity: 0.8,
		},
		Decision: Decision{
			ApproveThreshold: 0.85,
			ReviewThreshold:  0.75,
			Weights: map[domain.KindCategory]float64{
				domain.CategoryIdentity:   3.0,
				domain.CategoryBusiness:   2.0,
				domain.CategoryAddress:    1.5,
				domain.CategoryIncome:     1.5,
				domain.CategorySupporting: 1.0,
			},
		},
	}
}

// Validate rejects parameter combinations the engine cannot honor. Called
// at load time; a bad policy is fatal at startup.
func (p Policy) Validate() error {
	if p.Evaluator.ValidityPenalty < 0 || p.Evaluator.ValidityPenalty > 1 {
		return fmt.Errorf("policy: validity_penalty outside [0,1]")
	}
	if p.Evaluator.TamperPenalty < 0 || p.Evaluator.TamperPenalty > 1 {
		return fmt.Errorf("policy: tamper_penalty outside [0,1]")
	}
	if p.Evaluator.WeakMargin < 0 || p.Evaluator.WeakMargin > 1 {
		return fmt.Errorf("policy: weak_margin outside [0,1]")
	}
	if p.Evaluator.DefaultMinConfidence < 0 || p.Evaluator.DefaultMinConfidence > 1 {
		return fmt.Errorf("policy: default_min_confidence outside [0,1]")
	}
	if p.Consistency.NameSimilarity <= 0 || p.Consistency.NameSimilarity > 1 {
		return fmt.Errorf("policy: name_similarity outside (0,1]")
	}
	if p.Decision.ApproveThreshold < p.Decision.ReviewThreshold {
		return fmt.Errorf("policy: approve_threshold below review_threshold")
	}
	if p.Decision.ApproveThreshold > 1 || p.Decision.ReviewThreshold < 0 {
		return fmt.Errorf("policy: thresholds outside [0,1]")
	}
	for category, weight := range p.Decision.Weights {
		if weight <= 0 {
			return fmt.Errorf("policy: non-positive weight for category %q", category)
		}
	}
	return nil
}

// IsSevere reports whether a tamper signal is in the severe set.
func (p Policy) IsSevere(signal string) bool {
	for _, s := range p.Evaluator.SevereSignals {
		if s == signal {
			return true
		}
	}
	return false
}

// WeightFor returns the scoring weight for a document kind, defaulting to
// the supporting-document weight when the category is unlisted.
func (p Policy) WeightFor(kind domain.DocumentKind) float64 {
	if w, ok := p.Decision.Weights[kind.Category()]; ok {
		return w
	}
	if w, ok := p.Decision.Weights[domain.CategorySupporting]; ok {
		return w
	}
	return 1.0
}
