package handlers

import (
	"net/http"

	"github.com/presentwallah/engine/internal/api/middleware"
	"github.com/presentwallah/engine/internal/api/types"
	"github.com/presentwallah/engine/internal/services"
)

type SectionsHandler struct {
	contentSvc services.ContentService
	validate   interface{ Struct(any) error }
}

func NewSectionsHandler(contentSvc services.ContentService, v interface{ Struct(any) error }) *SectionsHandler {
	return &SectionsHandler{contentSvc: contentSvc, validate: v}
}

func (h *SectionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req types.SectionUpdateRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}
	sec, err := h.contentSvc.UpdateSection(r.Context(), id, middleware.GetUserID(r.Context()), &services.UpdateSectionInput{
		Content: req.Content,
		Liked:   req.Liked,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: sec})
}

func (h *SectionsHandler) Refine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req types.RefineRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}
	sec, err := h.contentSvc.RefineSection(r.Context(), id, middleware.GetUserID(r.Context()), req.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: sec})
}

func (h *SectionsHandler) Revisions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	revs, err := h.contentSvc.ListRevisions(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: revs})
}
