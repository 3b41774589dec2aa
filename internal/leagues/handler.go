package leagues

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/goblinball/goblinball/internal/filter"
	"github.com/goblinball/goblinball/internal/platform/httpx"
	"github.com/goblinball/goblinball/internal/shared"
)

// Handler wires HTTP endpoints for the leagues service.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers leagues routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/leagues", h.handleList)
	r.Post("/leagues", h.handleCreate)
	r.Get("/leagues/{id}", h.handleByID)
	r.Get("/leagues/owner/{ownerID}", h.handleByOwner)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	expr, err := httpx.QueryObject(r, "filter")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "filter must be a JSON object")
		return
	}
	leagues, err := h.service.List(r.Context(), expr)
	if err != nil {
		if errors.Is(err, filter.ErrMalformedFilter) {
			httpx.RespondError(w, httpx.ErrValidation)
			return
		}
		h.logger.Error("league list failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, leagues)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var input CreateInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	league, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			httpx.RespondError(w, httpx.ErrDuplicate)
			return
		}
		h.logger.Error("league create failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, league)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	league, err := h.service.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("league lookup failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, league)
}

func (h *Handler) handleByOwner(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.service.ByOwner(r.Context(), chi.URLParam(r, "ownerID"))
	if err != nil {
		h.logger.Error("league owner lookup failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, leagues)
}
