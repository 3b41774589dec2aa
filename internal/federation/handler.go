package federation

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goblinball/goblinball/internal/platform/httpx"
)

// Representation identifies one entity to resolve: its type tag and the
// opaque identifier minted by the owning service.
type Representation struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type resolveRequest struct {
	Representations []Representation `json:"representations"`
}

type resolveResponse struct {
	Entities []any `json:"entities"`
}

// Handler exposes the service's entity resolution endpoint, invoked by the
// federation layer rather than by application code.
type Handler struct {
	logger   *slog.Logger
	registry *Registry
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, registry *Registry) *Handler {
	return &Handler{logger: logger, registry: registry}
}

// MountRoutes registers the entity endpoint on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/entities", h.resolveEntities)
}

// resolveEntities resolves a batch of representations. Results keep the
// request order; a missing entity yields null in its slot (partial-success
// semantics), while a storage failure fails the whole batch.
func (h *Handler) resolveEntities(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid entity request body")
		return
	}

	entities := make([]any, 0, len(req.Representations))
	for _, rep := range req.Representations {
		entity, err := h.registry.Resolve(r.Context(), rep.Type, rep.ID)
		if err != nil {
			if errors.Is(err, ErrEntityNotFound) {
				entities = append(entities, nil)
				continue
			}
			h.logger.Error("entity resolution failed",
				slog.String("type", rep.Type),
				slog.String("id", rep.ID),
				slog.Any("error", err))
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
			return
		}
		entities = append(entities, entity)
	}

	httpx.JSON(w, http.StatusOK, resolveResponse{Entities: entities})
}
