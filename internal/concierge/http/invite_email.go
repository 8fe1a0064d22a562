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

type InviteEmailHandler struct {
	InviteService *service.InviteService
	Dispatcher    *service.InviteDispatcher
	Links         service.LinkBuilder
}

// ServeHTTP godoc
//
//	@Summary		Email Invites Endpoint
//	@Description	Issue an email-bound invite token for each address and dispatch a registration link to it. Issuance stops at the caller's quota; delivery failures do not undo issuance, the response reports how many notifications went out.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		conciergesdk.EmailInvitesRequest	true	"Email invite request"
//	@Success		200		{object}	conciergesdk.EmailInvitesResponse	"invites, sent"
//	@Failure		400		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/email [post].
func (h *InviteEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req conciergesdk.EmailInvitesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if len(req.Emails) == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "emails is required",
		})
		return
	}

	issuerID := httpx.UserIDFromContext(ctx)
	if issuerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeUnauthorized,
			ErrorDescription: "Authentication required",
		})
		return
	}

	ttl := time.Duration(req.TTLHours) * time.Hour

	// Issue one token per address. Issuance stops when the quota is hit;
	// anything issued up to that point stands.
	issued := make([]domain.Credential, 0, len(req.Emails))
	var issueErr error
	for _, email := range req.Emails {
		cred, err := h.InviteService.Issue(ctx, issuerID, domain.KindEmailToken, email, req.Notes, ttl)
		if err != nil {
			issueErr = err
			break
		}
		issued = append(issued, cred)
	}

	if issueErr != nil && len(issued) == 0 {
		switch {
		case errors.Is(issueErr, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Invalid invite parameters",
			})
		case errors.Is(issueErr, service.ErrQuotaExceeded):
			httpx.WriteJSON(w, http.StatusForbidden, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeQuotaExceeded,
				ErrorDescription: "Active invite quota reached for this issuer",
			})
		default:
			log.Error("failed to issue email invites", "err", issueErr)
			httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeServerError,
				ErrorDescription: "Failed to issue invites",
			})
		}
		return
	}
	if issueErr != nil {
		log.Warn("partial email invite batch",
			"issued", len(issued),
			"requested", len(req.Emails),
			"err", issueErr,
		)
	}

	sent := h.Dispatcher.SendBulk(ctx, issued)

	response := conciergesdk.EmailInvitesResponse{
		Invites: make([]conciergesdk.InviteResponse, 0, len(issued)),
		Sent:    sent,
	}
	for _, c := range issued {
		response.Invites = append(response.Invites, inviteResponse(h.Links, c))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
