package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kycgate/internal/catalog"
	"kycgate/internal/redaction"
	"kycgate/internal/verification"
	"kycgate/pkg/domain"
	dErrors "kycgate/pkg/domain-errors"
	"kycgate/pkg/platform/httputil"
	"kycgate/pkg/requestcontext"
)

// Service defines the interface for verification operations.
type Service interface {
	Verify(ctx context.Context, req verification.Request) (*verification.Result, error)
}

// Handler wires verification endpoints to the verification service.
// Every response leaving this layer is redacted first.
type Handler struct {
	service Service
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New constructs a verification handler with its dependencies.
func New(service Service, cat *catalog.Catalog, logger *slog.Logger) *Handler {
	return &Handler{service: service, catalog: cat, logger: logger}
}

// Register mounts verification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
	r.Get("/purposes/{purpose}/requirements", h.HandleRequirements)
}

// HandleVerify handles POST /verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		var de *dErrors.Error
		if !errors.As(err, &de) {
			err = dErrors.New(dErrors.CodeBadRequest, err.Error())
		}
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Verify(ctx, domainReq)
	if err != nil {
		h.logger.ErrorContext(ctx, "verification failed",
			"request_id", requestID,
			"purpose", req.Purpose,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, redaction.Redact(result))
}

// HandleRequirements handles GET /purposes/{purpose}/requirements.
func (h *Handler) HandleRequirements(w http.ResponseWriter, r *http.Request) {
	purpose, err := domain.ParsePurpose(chi.URLParam(r, "purpose"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	requirements, err := h.catalog.RequirementsFor(purpose)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"purpose":      purpose.String(),
		"display_name": purpose.DisplayName(),
		"requirements": requirements,
	})
}
