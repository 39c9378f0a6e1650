package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"team-member-service/internal/service"
)

func (h *Handler) handleMemberList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.List(r.Context())
	if err != nil {
		h.writeError(w, "handleMemberList", err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) handleMemberGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	m, err := h.Members.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "handleMemberGet", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handleMemberCreate(w http.ResponseWriter, r *http.Request) {
	root, err := readObject(w, r)
	if err != nil {
		h.writeError(w, "handleMemberCreate", err)
		return
	}

	created, err := h.Members.Create(r.Context(), memberInputFrom(root))
	if err != nil {
		h.writeError(w, "handleMemberCreate", err)
		return
	}

	h.Log.Info("team member created", slog.String("id", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleMemberUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	root, err := readObject(w, r)
	if err != nil {
		h.writeError(w, "handleMemberUpdate", err)
		return
	}

	patch := memberPatchFrom(root)
	updated, err := h.Members.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, "handleMemberUpdate", err)
		return
	}

	h.Log.Info("team member updated",
		slog.String("id", updated.ID),
		slog.String("fields", describePatch(patch)),
	)
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Members.Delete(r.Context(), id); err != nil {
		h.writeError(w, "handleMemberDelete", err)
		return
	}

	h.Log.Info("team member deleted", slog.String("id", id))
	writeJSON(w, http.StatusOK, messageResponse{Message: service.MsgMemberDeleted})
}
