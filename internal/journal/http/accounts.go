package http

import (
	"net/http"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/journalsdk"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create an account and return an access token for it
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		journalsdk.RegisterRequest	true	"email, name, password"
//	@Success		201		{object}	journalsdk.AuthResponse		"message, access_token, user"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"missing email or password"
//	@Failure		409		{object}	journalsdk.ErrorResponse	"email already registered"
//	@Failure		503		{object}	journalsdk.ErrorResponse	"storage unavailable"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req journalsdk.RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	account, err := h.AccountService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeAuthResponse(w, r, h.TokenService, http.StatusCreated, "User created successfully", account)
}

type LoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for an access token
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		journalsdk.LoginRequest		true	"email, password"
//	@Success		200		{object}	journalsdk.AuthResponse		"message, access_token, user"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"missing email or password"
//	@Failure		401		{object}	journalsdk.ErrorResponse	"invalid credentials"
//	@Failure		503		{object}	journalsdk.ErrorResponse	"storage unavailable"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req journalsdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	account, err := h.AccountService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeAuthResponse(w, r, h.TokenService, http.StatusOK, "Login successful", account)
}

func writeAuthResponse(
	w http.ResponseWriter,
	r *http.Request,
	tokens *service.TokenService,
	status int,
	message string,
	account domain.Account,
) {
	token, expiresAt, err := tokens.Issue(account.Email)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to issue token", "email", account.Email, "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, status, journalsdk.AuthResponse{
		Message:     message,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: journalsdk.UserSummary{
			Email: account.Email,
			Name:  account.Name,
		},
	})
}

type ProfileHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Profile
//	@Description	Return the caller's account summary
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	journalsdk.ProfileResponse	"email, name, created_at, papers_count"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or expired token"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"account no longer exists"
//	@Failure		503	{object}	journalsdk.ErrorResponse	"storage unavailable"
//	@Router			/api/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeAuthnError(w, r, service.ErrInvalidToken)
		return
	}

	p, err := h.AccountService.Profile(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, journalsdk.ProfileResponse{
		Email:       p.Email,
		Name:        p.Name,
		CreatedAt:   p.CreatedAt,
		PapersCount: p.PapersCount,
	})
}
