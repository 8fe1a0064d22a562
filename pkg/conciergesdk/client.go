package conciergesdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the concierge invite service. Unauthenticated
// endpoints (validate, redeem, health) work with a zero BearerToken; the
// admin endpoints (issue, list, email, cleanup) need one.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// BearerToken is sent as "Authorization: Bearer <token>" on admin
	// endpoints. The service expects an HS256 JWT whose subject names the
	// issuing admin.
	BearerToken string
}

// NewSDKClient creates a new concierge service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBearerToken returns a shallow copy of the client that authenticates
// admin calls with the given token.
func (c *SDKClient) WithBearerToken(token string) *SDKClient {
	clone := *c
	clone.BearerToken = token
	return &clone
}
