package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"crudapp/pkg/claims"
	"crudapp/pkg/person"
	"crudapp/pkg/views"
)

const (
	rootPath  = "/"
	loginPath = "/login"
	muxVarID  = "id"
)

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// render executes the view into a buffer first so a template failure can
// still produce a clean 500.
func render(w http.ResponseWriter, logger *slog.Logger, tpl Renderer, name string, page views.Page) bool {
	var buf bytes.Buffer
	if err := tpl.Render(&buf, name, page); err != nil {
		logger.Error("render", "view", name, "error", err)
		http.Error(w, "failed to render view", http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("failed to write response to client", "view", name, "error", err)
		return false
	}
	return true
}

// writeError is the single place store errors become HTTP statuses.
// The error text is sent as is.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, person.ErrNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request) (*claims.Claims, bool) {
	c, ok := claims.FromContext(r.Context())
	if !ok {
		redirect(w, r, loginPath)
		return nil, false
	}
	return c, true
}
