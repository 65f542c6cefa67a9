package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"crudapp/pkg/claims"
	"crudapp/pkg/session"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

const LoginPath = "/login"

var (
	noSessUrls = map[string][]string{
		"/login":  {http.MethodGet, http.MethodPost},
		"/logout": {http.MethodPost},
	}
	noSessPrefixes = []string{"/static/"}
)

// CheckSession is the access gate. A request passes only when its session
// carries a non-empty username; anything else is redirected to LoginPath
// and the wrapped handler is not called.
func CheckSession(store sessions.Store, name string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(r, name)
			if err != nil {
				logger.Warn("session load", "path", r.URL.Path, "error", err)
			}

			username := session.Username(sess)
			if username == "" {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			ctx := claims.NewContext(r.Context(), &claims.Claims{Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublic(r *http.Request) bool {
	for _, prefix := range noSessPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}

	path := r.URL.Path
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			path = tpl
		}
	}

	for _, method := range noSessUrls[path] {
		if method == r.Method {
			return true
		}
	}
	return false
}
