package handlers

import (
	"log/slog"
	"net/http"

	"crudapp/pkg/session"
	"crudapp/pkg/views"

	"github.com/gorilla/sessions"
)

type SessionHandler struct {
	Store  sessions.Store
	Name   string
	Views  Renderer
	Logger *slog.Logger
}

func NewSessionHandler(store sessions.Store, name string, tpl Renderer, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		Store:  store,
		Name:   name,
		Views:  tpl,
		Logger: logger,
	}
}

// LoginForm renders the login view whether or not the caller is logged in.
func (h *SessionHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, h.Views, "login", views.Page{})
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get(session.UsernameKey)
	if username == "" {
		http.Error(w, "Username is required.", http.StatusBadRequest)
		return
	}

	sess, err := h.Store.Get(r, h.Name)
	if err != nil {
		h.Logger.Warn("login: replacing unreadable session", "error", err)
	}
	if sess == nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	sess.Values[session.UsernameKey] = username
	if err := sess.Save(r, w); err != nil {
		h.Logger.Error("login", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Logger.Info("login", "user", username)
	redirect(w, r, rootPath)
}

// Logout destroys the whole session, server row and cookie.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Store.Get(r, h.Name)
	if sess == nil {
		h.Logger.Error("Error destroying session", "error", err)
		http.Error(w, "Error logging out.", http.StatusInternalServerError)
		return
	}

	username := session.Username(sess)
	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		h.Logger.Error("Error destroying session", "error", err)
		http.Error(w, "Error logging out.", http.StatusInternalServerError)
		return
	}

	h.Logger.Info("logout", "user", username)
	redirect(w, r, loginPath)
}
