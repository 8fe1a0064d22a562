package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/pkg/conciergesdk"
	"github.com/harbourview/concierge/pkg/httpx"
	"github.com/harbourview/concierge/pkg/slogx"
)

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invite Endpoint
//	@Description	Consume an invite credential for the registering account. At most one redemption ever succeeds per credential. Unknown, consumed and expired credentials all answer the same invalid_grant error.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		conciergesdk.RedeemInviteRequest	true	"Redeem request"
//	@Success		200		{object}	conciergesdk.RedeemInviteResponse	"id, kind, email, redeemed_at"
//	@Failure		400		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req conciergesdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	cred, err := h.InviteService.Redeem(ctx, req.Secret, domain.CredentialKind(req.Kind), req.RedeemerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidRequest,
				ErrorDescription: "secret, kind and redeemer_id are required",
			})
		case errors.Is(err, service.ErrInvalidOrExpired):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidGrant,
				ErrorDescription: "Invite is invalid or expired",
			})
		default:
			log.Error("failed to redeem invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeServerError,
				ErrorDescription: "Failed to redeem invite",
			})
		}
		return
	}

	response := conciergesdk.RedeemInviteResponse{
		ID:    cred.ID,
		Kind:  string(cred.Kind),
		Email: cred.BoundEmail,
	}
	if cred.UsedAt != nil {
		response.RedeemedAt = cred.UsedAt.Unix()
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
