package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/journal/api/journal" // Swagger docs
	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

// Pinger reports whether the backing store can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        Pinger

	TokenService      *service.TokenService
	AccountService    *service.AccountService
	SubmissionService *service.SubmissionService
	Reviewer          service.Reviewer
}

func NewRouter(
	tokens *service.TokenService,
	buildVersion string,
	st Pinger,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		TokenService: tokens,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerPapers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Journal API
//	@version		0.1.0
//	@description	Account registration and paper submission for the journal.
//	@description
//	@description				Access tokens are HS256 JWTs valid for seven days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/journal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5555
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

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.TokenService, writeAuthnError)
}

func (r *Router) registerAccounts() {
	register := &RegisterHandler{AccountService: r.AccountService, TokenService: r.TokenService}
	login := &LoginHandler{AccountService: r.AccountService, TokenService: r.TokenService}
	profile := &ProfileHandler{AccountService: r.AccountService}

	// Credential endpoints are limited by IP to slow down guessing.
	r.Mux.Handle("POST /api/register",
		httpx.Chain(register,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/profile",
		httpx.Chain(profile,
			r.authn(),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPapers() {
	submit := &SubmitPaperHandler{SubmissionService: r.SubmissionService}
	list := &ListPapersHandler{SubmissionService: r.SubmissionService}
	review := &ReviewHandler{Reviewer: r.Reviewer}

	r.Mux.Handle("POST /api/submit-paper",
		httpx.Chain(submit,
			r.authn(),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/my-papers",
		httpx.Chain(list,
			r.authn(),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)

	// The reviewer needs no account.
	r.Mux.Handle("POST /api/gpt-review",
		httpx.Chain(review,
			r.authn(),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently.
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
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
