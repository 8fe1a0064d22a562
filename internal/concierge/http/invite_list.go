package http

import (
	"errors"
	"net/http"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/pkg/conciergesdk"
	"github.com/harbourview/concierge/pkg/httpx"
	"github.com/harbourview/concierge/pkg/slogx"
)

type InviteListHandler struct {
	InviteService *service.InviteService
	Links         service.LinkBuilder
}

// ServeHTTP godoc
//
//	@Summary		List Active Invites Endpoint
//	@Description	List the caller's currently active invite credentials of the requested kind, newest first. Displays the shareable secret and link for each.
//	@Tags			Invites
//	@Produce		json
//	@Param			kind	query		string								true	"Credential kind: code or email_token"
//	@Success		200		{object}	conciergesdk.ListInvitesResponse	"invites"
//	@Failure		400		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	issuerID := httpx.UserIDFromContext(ctx)
	if issuerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	kind := domain.CredentialKind(r.URL.Query().Get("kind"))

	creds, err := h.InviteService.ListActive(ctx, issuerID, kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidRequest,
				ErrorDescription: "kind must be 'code' or 'email_token'",
			})
		default:
			log.Error("failed to list invites", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeServerError,
				ErrorDescription: "Failed to list invites",
			})
		}
		return
	}

	response := conciergesdk.ListInvitesResponse{
		Invites: make([]conciergesdk.InviteResponse, 0, len(creds)),
	}
	for _, c := range creds {
		response.Invites = append(response.Invites, inviteResponse(h.Links, c))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
