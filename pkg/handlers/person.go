package handlers

import (
	"log/slog"
	"net/http"

	"crudapp/pkg/person"
	"crudapp/pkg/views"

	"github.com/gorilla/mux"
)

type PersonHandler struct {
	Service person.ServicePerson
	Views   Renderer
	Logger  *slog.Logger
}

func NewPersonHandler(service person.ServicePerson, tpl Renderer, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		Service: service,
		Views:   tpl,
		Logger:  logger,
	}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	people, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("list people", "error", err)
		writeError(w, err)
		return
	}

	render(w, h.Logger, h.Views, "index", views.Page{Username: claims.Username, People: people})
}

func (h *PersonHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	render(w, h.Logger, h.Views, "create", views.Page{Username: claims.Username})
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	form, ok := decodePersonForm(w, r)
	if !ok {
		return
	}

	p, err := h.Service.Create(r.Context(), form)
	if err != nil {
		h.Logger.Error("create person", "error", err)
		writeError(w, err)
		return
	}

	h.Logger.Info("person created", "user", claims.Username, muxVarID, p.ID)
	redirect(w, r, rootPath)
}

// EditForm answers 404 when the id matches no record.
func (h *PersonHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)[muxVarID]
	p, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Warn("fetch person", muxVarID, id, "error", err)
		writeError(w, err)
		return
	}

	render(w, h.Logger, h.Views, "edit", views.Page{Username: claims.Username, Person: p})
}

// Update replaces all four fields. An id with no record is a no-op and
// still redirects.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	form, ok := decodePersonForm(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)[muxVarID]
	if err := h.Service.Update(r.Context(), id, form); err != nil {
		h.Logger.Error("update person", muxVarID, id, "error", err)
		writeError(w, err)
		return
	}

	h.Logger.Info("person updated", "user", claims.Username, muxVarID, id)
	redirect(w, r, rootPath)
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)[muxVarID]
	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("delete person", muxVarID, id, "error", err)
		writeError(w, err)
		return
	}

	h.Logger.Info("person deleted", "user", claims.Username, muxVarID, id)
	redirect(w, r, rootPath)
}

func decodePersonForm(w http.ResponseWriter, r *http.Request) (person.Form, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return person.Form{}, false
	}

	return person.Form{
		FirstName: r.PostForm.Get("first_name"),
		LastName:  r.PostForm.Get("last_name"),
		Email:     r.PostForm.Get("email"),
		Gender:    r.PostForm.Get("gender"),
	}, true
}
