package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/harbourview/concierge/internal/concierge/service"
	"github.com/harbourview/concierge/internal/concierge/store"
	"github.com/harbourview/concierge/pkg/httpx"
	"github.com/harbourview/concierge/pkg/slogx"

	_ "github.com/harbourview/concierge/api/concierge" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	authSecret   []byte
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	InviteService *service.InviteService
	Dispatcher    *service.InviteDispatcher
	Links         service.LinkBuilder
}

func NewRouter(
	authSecret []byte,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		authSecret:   authSecret,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Concierge Invite Service API
//	@version		0.1.0
//	@description	Invite issuance and redemption service. Issues single-use, time-bounded
//	@description	invite credentials (short human-friendly codes and long email-bound tokens),
//	@description	validates and redeems them at most once, and sweeps expired leftovers.
//
//	@contact.name	Harbour View Team
//	@contact.url	https://github.com/harbourview/concierge
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	issueHandler := &InviteIssueHandler{InviteService: r.InviteService, Links: r.Links}
	listHandler := &InviteListHandler{InviteService: r.InviteService, Links: r.Links}
	emailHandler := &InviteEmailHandler{InviteService: r.InviteService, Dispatcher: r.Dispatcher, Links: r.Links}
	validateHandler := &InviteValidateHandler{InviteService: r.InviteService}
	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}
	cleanupHandler := &InviteCleanupHandler{InviteService: r.InviteService}

	// POST /v1/invites - moderate rate limit by user (admin operation)
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(issueHandler,
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/invites - lenient rate limit by user (admin overview)
	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /v1/invites/email - moderate rate limit by user (bulk admin operation)
	r.Mux.Handle("POST /v1/invites/email",
		httpx.Chain(emailHandler,
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /v1/invites/validate - strict rate limit by IP (public pre-flight check)
	r.Mux.Handle("POST /v1/invites/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invites/redeem - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/invites/cleanup - moderate rate limit by user (admin operation)
	r.Mux.Handle("POST /v1/invites/cleanup",
		httpx.Chain(cleanupHandler,
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
