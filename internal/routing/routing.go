package routing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"crudapp/pkg/handlers"
	"crudapp/pkg/middleware"
	"crudapp/pkg/person"
)

const (
	staticPath      = "./static"
	shutdownTimeout = 10 * time.Second
	idPattern       = "{id}"
)

type Deps struct {
	People      person.ServicePerson
	Sessions    sessions.Store
	SessionName string
	Views       handlers.Renderer
	Logger      *slog.Logger
}

func InitRoutes(r *mux.Router, deps Deps) {
	sessionHandler := handlers.NewSessionHandler(deps.Sessions, deps.SessionName, deps.Views, deps.Logger)
	personHandler := handlers.NewPersonHandler(deps.People, deps.Views, deps.Logger)

	r.Use(middleware.CheckSession(deps.Sessions, deps.SessionName, deps.Logger))

	/* session routes */
	r.HandleFunc("/login", sessionHandler.LoginForm).Methods(http.MethodGet).Name("login")
	r.HandleFunc("/login", sessionHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", sessionHandler.Logout).Methods(http.MethodPost).Name("logout")

	/* person routes */
	r.HandleFunc("/", personHandler.List).Methods(http.MethodGet).Name("index")
	r.HandleFunc("/create", personHandler.CreateForm).Methods(http.MethodGet).Name("create")
	r.HandleFunc("/create", personHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/edit/"+idPattern, personHandler.EditForm).Methods(http.MethodGet).Name("edit")
	r.HandleFunc("/edit/"+idPattern, personHandler.Update).Methods(http.MethodPost)
	r.HandleFunc("/delete/"+idPattern, personHandler.Delete).Methods(http.MethodPost).Name("delete")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

// Handler builds the full middleware chain around a router that already
// has its routes.
func Handler(r *mux.Router, logger *slog.Logger) http.Handler {
	var h http.Handler = r
	h = gziphandler.GzipHandler(h)
	h = middleware.AccessLog(logger)(h)
	h = middleware.Panic(logger)(h)
	return h
}

// StartServer serves until ctx is cancelled, then drains in-flight requests.
func StartServer(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
