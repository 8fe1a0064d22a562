package conciergesdk

import (
	"context"
	"net/http"
)

// IssueInvite issues a single invite credential. Requires a bearer token;
// the token's subject becomes the credential's issuer.
func (c *SDKClient) IssueInvite(
	ctx context.Context,
	req IssueInviteRequest,
) (*InviteResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invites", req)
	if err != nil {
		return nil, err
	}

	var inviteResp InviteResponse
	if err := decodeJSON(resp, &inviteResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &inviteResp, nil
}

// ListInvites returns the caller's currently active invites of the given
// kind, newest first. Requires a bearer token.
func (c *SDKClient) ListInvites(
	ctx context.Context,
	kind string,
) (*ListInvitesResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/invites?kind="+kind, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListInvitesResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &listResp, nil
}

// EmailInvites issues email-bound invites in bulk and dispatches a
// registration link to each address. Requires a bearer token.
func (c *SDKClient) EmailInvites(
	ctx context.Context,
	req EmailInvitesRequest,
) (*EmailInvitesResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invites/email", req)
	if err != nil {
		return nil, err
	}

	var emailResp EmailInvitesResponse
	if err := decodeJSON(resp, &emailResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &emailResp, nil
}

// ValidateInvite performs the read-only pre-flight check. This is a public
// endpoint (no authentication required). A credential that is unknown,
// consumed or expired yields Valid=false rather than an error.
func (c *SDKClient) ValidateInvite(
	ctx context.Context,
	req ValidateInviteRequest,
) (*ValidateInviteResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invites/validate", req)
	if err != nil {
		return nil, err
	}

	var validateResp ValidateInviteResponse
	if err := decodeJSON(resp, &validateResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &validateResp, nil
}

// RedeemInvite consumes an invite credential. This is a public endpoint (no
// authentication required). Invalid, consumed and expired credentials all
// yield the same invalid_grant error.
func (c *SDKClient) RedeemInvite(
	ctx context.Context,
	req RedeemInviteRequest,
) (*RedeemInviteResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invites/redeem", req)
	if err != nil {
		return nil, err
	}

	var redeemResp RedeemInviteResponse
	if err := decodeJSON(resp, &redeemResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &redeemResp, nil
}

// CleanupInvites triggers an on-demand sweep of expired, never-redeemed
// credentials. Requires a bearer token.
func (c *SDKClient) CleanupInvites(ctx context.Context) (*CleanupResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/invites/cleanup", nil)
	if err != nil {
		return nil, err
	}

	var cleanupResp CleanupResponse
	if err := decodeJSON(resp, &cleanupResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &cleanupResp, nil
}
