package http

import (
	"net/http"

	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/pkg/conciergesdk"
	"github.com/harbourview/concierge/pkg/httpx"
	"github.com/harbourview/concierge/pkg/slogx"
)

type InviteCleanupHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Cleanup Invites Endpoint
//	@Description	Trigger an on-demand sweep of credentials that expired without ever being redeemed. Redeemed credentials are retained for audit. The same sweep also runs periodically in the background.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	conciergesdk.CleanupResponse	"deleted"
//	@Failure		401	{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/cleanup [post].
func (h *InviteCleanupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	deleted, err := h.InviteService.Cleanup(ctx)
	if err != nil {
		log.Error("failed to run invite cleanup", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeServerError,
			ErrorDescription: "Failed to run cleanup",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, conciergesdk.CleanupResponse{Deleted: deleted})
}
