package concierge_test

import (
	"testing"

	"github.com/harbourview/concierge/pkg/conciergesdk"
)

// TestHealthEndpoints verifies both health probes answer OK on a freshly
// started service.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupConciergeContainer(t)
	defer cleanup()

	client := conciergesdk.NewSDKClient(baseURL)

	t.Run("Livez", func(t *testing.T) {
		health, err := client.GetLiveness(t.Context())
		assertHealthy(t, health, err)
	})

	t.Run("Readyz", func(t *testing.T) {
		health, err := client.GetReadiness(t.Context())
		assertHealthy(t, health, err)
	})
}
