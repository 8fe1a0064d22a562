/*
Package conciergesdk provides a client SDK for the concierge invite service.

# Overview

The SDK wraps the service's HTTP API: issuing invite credentials, listing a
caller's active invites, bulk email invitations, the public validate and
redeem endpoints, the cleanup sweep, and the health probes.

Create a client for public endpoints:

	client := conciergesdk.NewSDKClient("https://concierge.example.com")

	health, err := client.GetLiveness(ctx)

	result, err := client.ValidateInvite(ctx, conciergesdk.ValidateInviteRequest{
		Secret: "k7m2p9qa",
		Kind:   "code",
	})

Admin endpoints need a bearer token (an HS256 JWT whose subject names the
issuing admin):

	admin := client.WithBearerToken(token)

	invite, err := admin.IssueInvite(ctx, conciergesdk.IssueInviteRequest{
		Kind:  "code",
		Notes: "front desk batch",
	})

# Error Handling

Every method returns *APIError for non-2xx responses, carrying the HTTP
status and the service's error code:

	_, err := client.RedeemInvite(ctx, req)
	var apiErr *conciergesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == conciergesdk.ErrorCodeInvalidGrant {
		// credential was invalid, consumed or expired
	}

Redemption deliberately answers with the same invalid_grant code whether the
credential never existed, was already used or expired, so callers cannot
probe which secrets exist.
*/
package conciergesdk
