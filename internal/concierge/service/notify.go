package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/pkg/slogx"
)

// LinkBuilder turns an invite credential into the shareable registration
// URL handed to the invited person.
type LinkBuilder struct {
	// BaseURL is the public origin of the registration UI, e.g.
	// "https://admin.example.com".
	BaseURL string
}

// RegistrationLink builds <base>/Account/Register?inviteToken=<secret> with
// the bound email appended for email tokens. Query values are
// percent-encoded.
func (b LinkBuilder) RegistrationLink(c domain.Credential) string {
	q := url.Values{}
	q.Set("inviteToken", c.Secret)
	if c.BoundEmail != "" {
		q.Set("email", c.BoundEmail)
	}
	return strings.TrimRight(b.BaseURL, "/") + "/Account/Register?" + q.Encode()
}

// Notifier delivers an invite link to its recipient. Delivery is
// fire-and-forget from the invite core's perspective: issuance is complete
// whether or not the notification lands.
type Notifier interface {
	SendInvite(ctx context.Context, c domain.Credential, link string) error
}

// LogNotifier stands in for a real mail transport and just logs the link.
type LogNotifier struct{}

func (LogNotifier) SendInvite(ctx context.Context, c domain.Credential, link string) error {
	slogx.FromContext(ctx).Info("invite notification dispatched",
		"credential_id", c.ID,
		"email", c.BoundEmail,
		"link", link,
	)
	return nil
}

// InviteDispatcher fans invite notifications out through a Notifier.
type InviteDispatcher struct {
	Links    LinkBuilder
	Notifier Notifier
}

// Send delivers the registration link for a single credential.
func (d *InviteDispatcher) Send(ctx context.Context, c domain.Credential) error {
	return d.Notifier.SendInvite(ctx, c, d.Links.RegistrationLink(c))
}

// SendBulk delivers links for every credential and reports how many went
// out. One failed delivery does not abort the remainder.
func (d *InviteDispatcher) SendBulk(ctx context.Context, creds []domain.Credential) int {
	log := slogx.FromContext(ctx)

	var sent int
	for _, c := range creds {
		if err := d.Send(ctx, c); err != nil {
			log.Warn("invite notification failed",
				slog.String("credential_id", c.ID),
				slog.String("email", c.BoundEmail),
				slog.Any("error", err),
			)
			continue
		}
		sent++
	}
	return sent
}
