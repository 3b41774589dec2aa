package players

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

// Handler wires HTTP endpoints for the players service.
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

// MountRoutes registers players routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/players", h.handleList)
	r.Post("/players", h.handleCreate)
	r.Get("/players/{id}", h.handleByID)
	r.Get("/players/league/{leagueID}", h.handleByLeague)
	r.Get("/players/team/{teamID}", h.handleByTeam)
	r.Post("/players/{id}/team", h.handleSetTeam)
	r.Post("/players/{id}/league", h.handleSetLeague)

	r.Get("/meta/classes", h.handleMeta(ClassSelect))
	r.Get("/meta/races", h.handleMeta(RaceSelect))
	r.Get("/meta/genders", h.handleMeta(GenderSelect))
	r.Get("/meta/traits", h.handleMeta(TraitSelect))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrNotIntegration):
		httpx.RespondError(w, httpx.ErrForbidden)
	case errors.Is(err, shared.ErrInvalidInput), errors.Is(err, filter.ErrMalformedFilter):
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
	sortExpr, err := httpx.QueryObject(r, "sort")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "sort must be a JSON object")
		return
	}
	players, err := h.service.List(r.Context(), expr, sortExpr)
	if err != nil {
		h.respondError(w, err, "player list failed")
		return
	}
	httpx.JSON(w, http.StatusOK, players)
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

	player, err := h.service.Create(r.Context(), identity, input)
	if err != nil {
		h.respondError(w, err, "player create failed")
		return
	}
	httpx.JSON(w, http.StatusCreated, player)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	player, err := h.service.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "player lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, player)
}

func (h *Handler) handleByLeague(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ByLeague(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.respondError(w, err, "player league lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, players)
}

func (h *Handler) handleByTeam(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ByTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		h.respondError(w, err, "player team lookup failed")
		return
	}
	httpx.JSON(w, http.StatusOK, players)
}

type setTeamRequest struct {
	TeamID string `json:"team"`
}

func (h *Handler) handleSetTeam(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var input setTeamRequest
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	player, err := h.service.SetTeam(r.Context(), chi.URLParam(r, "id"), input.TeamID)
	if err != nil {
		h.respondError(w, err, "player team assignment failed")
		return
	}
	httpx.JSON(w, http.StatusOK, player)
}

type setLeagueRequest struct {
	LeagueID string `json:"league" validate:"required"`
}

func (h *Handler) handleSetLeague(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	var input setLeagueRequest
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	player, err := h.service.SetLeague(r.Context(), chi.URLParam(r, "id"), input.LeagueID)
	if err != nil {
		h.respondError(w, err, "player league assignment failed")
		return
	}
	httpx.JSON(w, http.StatusOK, player)
}

func (h *Handler) handleMeta(build func() MetaSelect) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, build())
	}
}
