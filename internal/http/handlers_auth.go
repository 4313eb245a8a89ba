package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/session"
)

// AuthDirectory is the slice of the directory client the auth handlers
// consume. *directory.Client satisfies it.
type AuthDirectory interface {
	Login(ctx context.Context, email, password string) (model.AuthSession, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	Logout(ctx context.Context) session.PersistResult
}

// AuthHandlers provides the portal's authentication endpoints.
type AuthHandlers struct {
	Dir    AuthDirectory
	Tokens *session.TokenStore
	Logger *slog.Logger
}

// Login handles POST /portal/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var body model.LoginRequest
	if !DecodeJSON(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		RenderError(w, r, h.Logger, apperrors.Validation("email and password are required"))
		return
	}

	auth, err := h.Dir.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, auth)
}

// Register handles POST /portal/auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var body model.RegisterRequest
	if !DecodeJSON(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		RenderError(w, r, h.Logger, apperrors.Validation("email and password are required"))
		return
	}

	if err := h.Dir.Register(r.Context(), body); err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Logout handles POST /portal/auth/logout. Always succeeds locally; a failed
// durable delete is logged but does not block the logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if res := h.Dir.Logout(r.Context()); !res.Persisted {
		h.Logger.WarnContext(r.Context(), "logout not durably persisted", "error", res.Err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /portal/auth/me, serving the cached profile of the current
// session.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	if h.Tokens.Token(r.Context()) == "" {
		RenderError(w, r, h.Logger, apperrors.Unauthorized("not logged in"))
		return
	}

	profile, ok := h.Tokens.Profile(r.Context())
	if !ok {
		RenderError(w, r, h.Logger, apperrors.NotFound("no profile cached for this session"))
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}
