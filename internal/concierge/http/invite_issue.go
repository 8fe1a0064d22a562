package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/pkg/conciergesdk"
	"github.com/harbourview/concierge/pkg/httpx"
	"github.com/harbourview/concierge/pkg/slogx"
)

type InviteIssueHandler struct {
	InviteService *service.InviteService
	Links         service.LinkBuilder
}

// ServeHTTP godoc
//
//	@Summary		Issue Invite Endpoint
//	@Description	Issue a single invite credential: a short human-friendly code or a long email-bound token. This is an admin-only operation; the bearer token's subject becomes the issuer.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		conciergesdk.IssueInviteRequest	true	"Issue request"
//	@Success		200		{object}	conciergesdk.InviteResponse		"id, kind, secret, link, expires_at"
//	@Failure		400		{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	conciergesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req conciergesdk.IssueInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	// Get the issuing admin's ID from context
	issuerID := httpx.UserIDFromContext(ctx)
	if issuerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	cred, err := h.InviteService.Issue(
		ctx,
		issuerID,
		domain.CredentialKind(req.Kind),
		req.Email,
		req.Notes,
		time.Duration(req.TTLHours)*time.Hour,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Invalid invite parameters",
			})
		case errors.Is(err, service.ErrQuotaExceeded):
			httpx.WriteJSON(w, http.StatusForbidden, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeQuotaExceeded,
				ErrorDescription: "Active invite quota reached for this issuer",
			})
		default:
			log.Error("failed to issue invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeServerError,
				ErrorDescription: "Failed to issue invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inviteResponse(h.Links, cred))
}
