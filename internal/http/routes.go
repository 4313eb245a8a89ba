package httpx

import (
	"log/slog"
	"net/http"

	"github.com/eventdesk/eventdesk/internal/service"
	"github.com/eventdesk/eventdesk/internal/session"
)

// RouterServices carries the dependencies of the portal's HTTP surface.
type RouterServices struct {
	Events *service.EventService
	Auth   AuthDirectory
	Tokens *session.TokenStore
	Logger *slog.Logger
}

// NewRouter builds the portal's route table.
func NewRouter(svcs RouterServices) http.Handler {
	logger := svcs.Logger
	if logger == nil {
		logger = slog.Default()
	}

	events := &EventHandlers{Svc: svcs.Events, Logger: logger}
	auth := &AuthHandlers{Dir: svcs.Auth, Tokens: svcs.Tokens, Logger: logger}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealth)

	mux.HandleFunc("GET /portal/events", events.List)
	mux.HandleFunc("POST /portal/events", events.Create)
	mux.HandleFunc("GET /portal/events/{id}", events.Get)
	mux.HandleFunc("PUT /portal/events/{id}", events.Update)
	mux.HandleFunc("DELETE /portal/events/{id}", events.Delete)

	mux.HandleFunc("POST /portal/auth/login", auth.Login)
	mux.HandleFunc("POST /portal/auth/register", auth.Register)
	mux.HandleFunc("POST /portal/auth/logout", auth.Logout)
	mux.HandleFunc("GET /portal/auth/me", auth.Me)

	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
