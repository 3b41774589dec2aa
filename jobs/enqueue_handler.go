package jobs

import (
	"log/slog"
	"net/http"

	"github.com/goblinball/goblinball/internal/platform/httpx"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/internal/users"
)

// GenerateHandler returns the HTTP endpoint that enqueues a player
// generation batch. Restricted to integration and admin accounts.
func (c *Client) GenerateHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := shared.IdentityFromContext(r.Context())
		if identity == nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		switch identity.Role {
		case users.RoleIntegration, users.RoleAdmin:
		default:
			httpx.RespondError(w, httpx.ErrForbidden)
			return
		}

		var payload PlayerGenerationPayload
		if err := httpx.DecodeJSON(r, &payload); err != nil {
			httpx.RespondError(w, httpx.ErrValidation)
			return
		}
		if payload.LeagueID == "" {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "leagueId is required")
			return
		}

		info, err := c.EnqueuePlayerGeneration(r.Context(), payload)
		if err != nil {
			logger.Error("enqueue player generation", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusAccepted, map[string]string{
			"task":  info.ID,
			"queue": info.Queue,
		})
	}
}
