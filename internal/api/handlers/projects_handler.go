package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/presentwallah/engine/internal/api/middleware"
	"github.com/presentwallah/engine/internal/api/types"
	"github.com/presentwallah/engine/internal/services"
)

type ProjectsHandler struct {
	projectSvc services.ProjectService
	contentSvc services.ContentService
	exportSvc  services.ExportService
	validate   interface{ Struct(any) error }
}

func NewProjectsHandler(projectSvc services.ProjectService, contentSvc services.ContentService, exportSvc services.ExportService, v interface{ Struct(any) error }) *ProjectsHandler {
	return &ProjectsHandler{projectSvc: projectSvc, contentSvc: contentSvc, exportSvc: exportSvc, validate: v}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	items, err := h.projectSvc.ListProjects(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    items[start:end],
		Meta:    &types.Meta{Page: page, PageSize: size, Total: int64(len(items))},
	})
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectCreateRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}

	input := &services.CreateProjectInput{
		Title:        req.Title,
		DocumentType: req.DocumentType,
		MainTopic:    req.MainTopic,
		Template:     req.Template,
		FontSize:     req.FontSize,
	}
	for i, sec := range req.Sections {
		orderIndex := i
		if sec.Order != nil {
			orderIndex = *sec.Order
		}
		input.Sections = append(input.Sections, services.SectionInput{Title: sec.Title, OrderIndex: orderIndex})
	}

	p, err := h.projectSvc.CreateProject(r.Context(), middleware.GetUserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.projectSvc.GetProject(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req types.ProjectUpdateRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := h.projectSvc.UpdateProject(r.Context(), id, middleware.GetUserID(r.Context()), &services.UpdateProjectInput{
		Template: req.Template,
		FontSize: req.FontSize,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.projectSvc.DeleteProject(r.Context(), id, middleware.GetUserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// Generate fills every empty section with provider content. With
// ?background=true the work is queued and the call returns immediately.
func (h *ProjectsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	userID := middleware.GetUserID(r.Context())

	if r.URL.Query().Get("background") == "true" {
		if err := h.contentSvc.EnqueueGenerateAll(r.Context(), id, userID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, types.APIResponse{
			Success: true,
			Data:    map[string]any{"status": "queued"},
		})
		return
	}

	res, err := h.contentSvc.GenerateAll(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: res})
}

// Export streams the assembled office file. Decks fetch photos unless
// ?images=false.
func (h *ProjectsHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	includeImages := r.URL.Query().Get("images") != "false"

	res, err := h.exportSvc.Export(r.Context(), id, middleware.GetUserID(r.Context()), includeImages)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

// Outline asks the provider for section or slide titles for a topic.
func (h *ProjectsHandler) Outline(w http.ResponseWriter, r *http.Request) {
	var req types.OutlineRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}
	titles, err := h.contentSvc.SuggestOutline(r.Context(), req.MainTopic, req.DocumentType, req.NumSlides)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]any{"titles": titles}})
}
