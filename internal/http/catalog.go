package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleProjectList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Catalog.ListProjects(r.Context())
	if err != nil {
		h.writeError(w, "handleProjectList", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "handleProjectGet", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleTaskList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Catalog.ListTasks(r.Context())
	if err != nil {
		h.writeError(w, "handleTaskList", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.Catalog.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "handleTaskGet", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
