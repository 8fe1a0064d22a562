package concierge_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupConciergeContainerWithDefaultRateLimits starts the service WITHOUT the
// relaxed rate limit overrides. Only the rate limiting tests use this; every
// other test uses setupConciergeContainer() so rapid requests don't trip the
// production limits.
func setupConciergeContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"CONCIERGE_AUTH_SECRET":   authSecret,
			"CONCIERGE_DATABASE_FILE": "/concierge.db",
			"CONCIERGE_BASE_URL":      "https://register.example.com",
			"ENV":                     "test",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			// NOTE: No rate limit overrides - using production defaults
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// TestRedeemRateLimit hammers the public redeem endpoint and expects the
// strict per-IP limit to start answering 429 well before the burst ends.
func TestRedeemRateLimit(t *testing.T) {
	baseURL, cleanup := setupConciergeContainerWithDefaultRateLimits(t)
	defer cleanup()

	httpClient := &http.Client{Timeout: 5 * time.Second}

	var limited int
	for range 50 {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost,
			baseURL+"/v1/invites/redeem", nil)
		require.NoError(t, err)

		resp, err := httpClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
		}
	}

	require.Positive(t, limited, "strict per-IP limit should reject part of a 50-request burst")
	t.Logf("%d of 50 requests rate limited", limited)
}
