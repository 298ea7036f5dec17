package http

import (
	"encoding/json"
	"net/http"

	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeadHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type leadHandlerImpl struct {
	leadService lead.Service
}

func NewLeadHandler(leadService lead.Service) LeadHandler {
	return &leadHandlerImpl{leadService: leadService}
}

func (h *leadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.leadService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req lead.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leadService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Lead created", result)
}

func (h *leadHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Lead ID is required", nil)
		return
	}

	var req lead.UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leadService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Lead ID is required", nil)
		return
	}

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Lead deleted", nil)
}

func (h *leadHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	result, err := h.leadService.Import(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, result.Message, result)
}
