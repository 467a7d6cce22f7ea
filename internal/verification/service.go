package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"kycgate/internal/audit"
	"kycgate/internal/catalog"
	"kycgate/internal/consistency"
	"kycgate/internal/decision"
	"kycgate/internal/evaluation"
	"kycgate/internal/extraction"
	"kycgate/internal/policy"
	"kycgate/internal/verification/metrics"
	"kycgate/pkg/domain"
	"kycgate/pkg/requestcontext"
)

// Service runs the verification pipeline. All collaborators are injected;
// the only external call is the extraction port, so tests run fully on
// synthetic results.
type Service struct {
	catalog   *catalog.Catalog
	extractor extraction.Extractor
	evaluator *evaluation.Evaluator
	checker   *consistency.Checker
	engine    *decision.Engine
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Publisher
}

// NewService wires the pipeline. logger, metrics, and auditor may be nil.
func NewService(
	cat *catalog.Catalog,
	extractor extraction.Extractor,
	pol policy.Policy,
	logger *slog.Logger,
	m *metrics.Metrics,
	auditor *audit.Publisher,
) *Service {
	return &Service{
		catalog:   cat,
		extractor: extractor,
		evaluator: evaluation.New(pol),
		checker:   consistency.New(pol),
		engine:    decision.NewEngine(pol),
		logger:    logger,
		metrics:   m,
		audit:     auditor,
	}
}

// Verify runs one submission through the pipeline and returns the
// unredacted result. Callers facing the outside world must pass it through
// redaction before exposure. Fails only on an unknown purpose; per-document
// failures degrade to UNREADABLE status instead of aborting the submission.
func (s *Service) Verify(ctx context.Context, req Request) (*Result, error) {
	requirements, err := s.catalog.RequirementsFor(req.Purpose)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	requestID := domain.NewRequestID().String()
	now := requestcontext.Now(ctx)
	trail := &Trail{}
	s.step(trail, now, fmt.Sprintf("verification started: purpose=%s uploads=%d", req.Purpose, len(req.Uploads)))

	s.audit.Emit(ctx, audit.Event{
		Category:  audit.CategoryOperations,
		RequestID: requestID,
		Purpose:   req.Purpose.String(),
		Action:    audit.ActionVerificationStarted,
	})

	docs := s.evaluateAll(ctx, requestID, req)
	for _, doc := range docs {
		s.step(trail, now, fmt.Sprintf("evaluated %s: kind=%s status=%s confidence=%.2f",
			doc.Filename, doc.Kind, doc.Status, doc.Confidence))
	}

	// Join barrier passed: consistency and adjudication run only after
	// every per-document evaluation completed.
	checks := s.checker.Check(docs)
	for _, check := range checks {
		s.step(trail, now, fmt.Sprintf("cross-check %s: %s", check.Field, check.Verdict))
	}
	trail.CrossChecks = checks

	d := s.engine.Decide(requirements, docs, checks)
	s.step(trail, now, fmt.Sprintf("decision: %s score=%.2f escalate=%t", d.Outcome, d.OverallScore, d.EscalateToHuman))

	s.metrics.IncrementDecision(string(d.Outcome), req.Purpose.String())
	s.metrics.ObserveVerifyLatency(time.Since(start))
	s.audit.Emit(ctx, audit.Event{
		Category:  audit.CategoryCompliance,
		RequestID: requestID,
		Purpose:   req.Purpose.String(),
		Action:    audit.ActionDecisionMade,
		Decision:  string(d.Outcome),
		Reason:    firstOrEmpty(d.Reasons),
	})
	if s.logger != nil {
		s.logger.InfoContext(ctx, "verification completed",
			"request_id", requestID,
			"purpose", req.Purpose,
			"decision", d.Outcome,
			"score", d.OverallScore,
			"escalate", d.EscalateToHuman,
		)
	}

	return s.assemble(requestID, now, req.Purpose, requirements, docs, checks, d, trail), nil
}

// evaluateAll extracts and evaluates every upload concurrently. Independent
// documents have no ordering requirement; results land in upload order.
// Extraction failures never abort the group - the document degrades to
// UNREADABLE and the rest of the submission proceeds.
func (s *Service) evaluateAll(ctx context.Context, requestID string, req Request) []evaluation.Document {
	docs := make([]evaluation.Document, len(req.Uploads))
	now := requestcontext.Now(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for i, upload := range req.Uploads {
		i, upload := i, upload
		g.Go(func() error {
			extractStart := time.Now()
			res, err := s.extractor.Extract(gctx, upload)

			if err != nil {
				s.metrics.ObserveExtractionLatency("unreadable", time.Since(extractStart))
				docs[i] = evaluation.Unreadable(upload.Filename, err)
				s.audit.Emit(gctx, audit.Event{
					Category:  audit.CategoryOperations,
					RequestID: requestID,
					Purpose:   req.Purpose.String(),
					Action:    audit.ActionDocumentUnreadable,
					Subject:   upload.Filename,
					Detail:    err.Error(),
				})
				if s.logger != nil {
					s.logger.ErrorContext(gctx, "document extraction failed",
						"request_id", requestID,
						"filename", upload.Filename,
						"error", err,
					)
				}
				return nil
			}

			s.metrics.ObserveExtractionLatency(res.Kind.String(), time.Since(extractStart))
			var reqEntry *catalog.Requirement
			if entry, ok := s.catalog.Lookup(req.Purpose, res.Kind); ok {
				reqEntry = &entry
			}
			docs[i] = s.evaluator.Evaluate(upload.Filename, *res, reqEntry, now)
			s.audit.Emit(gctx, audit.Event{
				Category:  audit.CategoryOperations,
				RequestID: requestID,
				Purpose:   req.Purpose.String(),
				Action:    audit.ActionDocumentEvaluated,
				Subject:   upload.Filename,
				Detail:    fmt.Sprintf("kind=%s status=%s", docs[i].Kind, docs[i].Status),
			})
			return nil
		})
	}
	// Workers only return nil; Wait is the join barrier.
	_ = g.Wait()
	return docs
}

// assemble freezes the pipeline outputs into the immutable result.
func (s *Service) assemble(
	requestID string,
	now time.Time,
	purpose domain.Purpose,
	requirements []catalog.Requirement,
	docs []evaluation.Document,
	checks []consistency.Result,
	d decision.Decision,
	trail *Trail,
) *Result {
	checklist := make([]RequiredDocument, 0, len(requirements))
	for _, req := range requirements {
		fulfilled := false
		for _, doc := range docs {
			if doc.Kind == req.Kind && doc.Status == evaluation.StatusAccepted {
				fulfilled = true
				break
			}
		}
		checklist = append(checklist, RequiredDocument{
			Kind:          req.Kind,
			Mandatory:     req.Mandatory,
			MinConfidence: req.MinConfidence,
			Fulfilled:     fulfilled,
		})
	}

	uploads := make([]DocumentResult, 0, len(docs))
	for _, doc := range docs {
		uploads = append(uploads, DocumentResult{
			Filename:             doc.Filename,
			Kind:                 doc.Kind,
			Fields:               doc.Fields,
			TamperSignals:        doc.TamperSignals,
			ExtractionConfidence: doc.ExtractionConfidence,
			Completeness:         doc.Completeness,
			ValidityPenalty:      doc.ValidityPenalty,
			TamperPenalty:        doc.TamperPenalty,
			Confidence:           doc.Confidence,
			Status:               doc.Status,
			Notes:                doc.Notes,
		})
	}

	crossChecks := make(map[string]string, len(checks))
	for _, check := range checks {
		crossChecks[string(check.Field)] = string(check.Verdict)
	}

	return &Result{
		RequestID:         requestID,
		Timestamp:         now.UTC(),
		Purpose:           purpose,
		RequiredDocuments: checklist,
		Uploads:           uploads,
		CrossChecks:       crossChecks,
		Decision:          d.Outcome,
		OverallScore:      d.OverallScore,
		DecisionReasons:   d.Reasons,
		NextActions:       d.NextActions,
		EscalateToHuman:   d.EscalateToHuman,
		Audit:             trail,
	}
}

func (s *Service) step(trail *Trail, now time.Time, message string) {
	trail.Steps = append(trail.Steps, Step{Timestamp: now.UTC(), Message: message})
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
