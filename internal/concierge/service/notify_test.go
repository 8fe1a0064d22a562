package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/stretchr/testify/require"
)

func TestRegistrationLink(t *testing.T) {
	links := service.LinkBuilder{BaseURL: "https://admin.example.com/"}

	t.Run("code without email", func(t *testing.T) {
		link := links.RegistrationLink(domain.Credential{
			Kind:   domain.KindCode,
			Secret: "k7m2p9qa",
		})
		require.Equal(t, "https://admin.example.com/Account/Register?inviteToken=k7m2p9qa", link)
	})

	t.Run("email token percent-encodes the address", func(t *testing.T) {
		link := links.RegistrationLink(domain.Credential{
			Kind:       domain.KindEmailToken,
			Secret:     "tok123",
			BoundEmail: "guest+vip@example.com",
		})
		require.Equal(t,
			"https://admin.example.com/Account/Register?email=guest%2Bvip%40example.com&inviteToken=tok123",
			link)
	})
}

type flakyNotifier struct {
	failFor string
	sent    []string
}

func (n *flakyNotifier) SendInvite(_ context.Context, c domain.Credential, _ string) error {
	if c.BoundEmail == n.failFor {
		return errors.New("smtp: connection refused")
	}
	n.sent = append(n.sent, c.BoundEmail)
	return nil
}

func TestSendBulkContinuesPastFailures(t *testing.T) {
	notifier := &flakyNotifier{failFor: "b@example.com"}
	dispatcher := &service.InviteDispatcher{
		Links:    service.LinkBuilder{BaseURL: "https://admin.example.com"},
		Notifier: notifier,
	}

	creds := []domain.Credential{
		{Kind: domain.KindEmailToken, Secret: "t1", BoundEmail: "a@example.com"},
		{Kind: domain.KindEmailToken, Secret: "t2", BoundEmail: "b@example.com"},
		{Kind: domain.KindEmailToken, Secret: "t3", BoundEmail: "c@example.com"},
	}

	sent := dispatcher.SendBulk(context.Background(), creds)
	require.Equal(t, 2, sent)
	require.Equal(t, []string{"a@example.com", "c@example.com"}, notifier.sent)
}
