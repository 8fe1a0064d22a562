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

type InviteValidateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invite Endpoint
//	@Description	Read-only pre-flight check: reports whether a credential is currently active without consuming it. The answer is advisory; only redemption is authoritative. Unknown, consumed and expired credentials all answer valid=false.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		conciergesdk.ValidateInviteRequest	true	"Validate request"
//	@Success		200		{object}	conciergesdk.ValidateInviteResponse	"valid, kind, email, expires_at"
//	@Failure		400		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	conciergesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/validate [post].
func (h *InviteValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req conciergesdk.ValidateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
			Error:            conciergesdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	cred, err := h.InviteService.Validate(ctx, req.Secret, domain.CredentialKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpired):
			httpx.WriteJSON(w, http.StatusOK, conciergesdk.ValidateInviteResponse{Valid: false})
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeInvalidRequest,
				ErrorDescription: "secret and kind are required",
			})
		default:
			log.Error("failed to validate invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, conciergesdk.ErrorResponse{
				Error:            conciergesdk.ErrorCodeServerError,
				ErrorDescription: "Failed to validate invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, conciergesdk.ValidateInviteResponse{
		Valid:     true,
		Kind:      string(cred.Kind),
		Email:     cred.BoundEmail,
		ExpiresAt: cred.ExpiresAt.Unix(),
	})
}
