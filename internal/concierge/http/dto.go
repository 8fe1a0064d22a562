package http

import (
	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/pkg/conciergesdk"
)

// inviteResponse maps a credential onto the wire shape, including the
// shareable registration link.
func inviteResponse(links service.LinkBuilder, c domain.Credential) conciergesdk.InviteResponse {
	return conciergesdk.InviteResponse{
		ID:        c.ID,
		Kind:      string(c.Kind),
		Secret:    c.Secret,
		Link:      links.RegistrationLink(c),
		Email:     c.BoundEmail,
		Notes:     c.Notes,
		ExpiresAt: c.ExpiresAt.Unix(),
	}
}
