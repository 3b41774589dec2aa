package teams

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

// Handler wires HTTP endpoints for the teams service.
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

// MountRoutes registers teams routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/teams", h.handleList)
	r.Post("/teams", h.handleCreate)
	r.Get("/teams/{id}", h.handleByID)
	r.Get("/teams/owner/{ownerID}", h.handleByOwner)
	r.Get("/teams/league/{leagueID}", h.handleByLeague)
	r.Post("/teams/{id}/gold", h.handleGold)
	r.Post("/teams/{id}/roster", h.handleRoster)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, shared.ErrDuplicate):
		httpx.RespondError(w, httpx.ErrDuplicate)
	case errors.Is(err, ErrNotOwner):
		httpx.RespondError(w, httpx.ErrForbidden)
	case errors.Is(err, ErrInsufficientGold):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "insufficient gold")
	case errors.Is(err, ErrUnknownSlot):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "unknown roster slot")
	case errors.Is(err, filter.ErrMalformedFilter):
		httpx.RespondError(w, httpx.ErrValidation)
	default:
		h.logger.Error(msg, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	expr, err := httpx.QueryObject(r, "filter")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "filter must be a JSON object")
		return
	}
	teams, err := h.service.List(r.Context(), expr)
	if err != nil {
		h.respondError(w, err, "team list failed")
		return
	}
	httpx.JSON(w, http.StatusOK, teams)
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

	team, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		h.respondError(w, err, "team create failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, team)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	team, err := h.service.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "team lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, team)
}

func (h *Handler) handleByOwner(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ByOwner(r.Context(), chi.URLParam(r, "ownerID"))
	if err != nil {
		h.respondError(w, err, "team owner lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, teams)
}

func (h *Handler) handleByLeague(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ByLeague(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.respondError(w, err, "team league lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, teams)
}

type goldRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

func (h *Handler) handleGold(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var input goldRequest
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	team, err := h.service.AdjustGold(r.Context(), identity, chi.URLParam(r, "id"), input.Delta)
	if err != nil {
		h.respondError(w, err, "gold adjustment failed")
		return
	}
	httpx.JSON(w, http.StatusOK, team)
}

type rosterRequest struct {
	Slot     string `json:"slot" validate:"required"`
	PlayerID string `json:"player" validate:"required"`
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var input rosterRequest
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	team, err := h.service.AssignSlot(r.Context(), identity, chi.URLParam(r, "id"), input.Slot, input.PlayerID)
	if err != nil {
		h.respondError(w, err, "roster assignment failed")
		return
	}
	httpx.JSON(w, http.StatusOK, team)
}
