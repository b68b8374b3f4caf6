package handlers

import (
	"net/http"
	"strings"

	"lavoro/internal/app"
	"lavoro/internal/domain/job"
	"lavoro/internal/http/middleware"
	"lavoro/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Location     string   `json:"location"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Status       string   `json:"status"`
}

func (req jobRequest) toOffer() job.Offer {
	return job.Offer{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Type:         job.Type(req.Type),
		Salary:       strings.TrimSpace(req.Salary),
		Location:     strings.TrimSpace(req.Location),
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Status:       job.Status(req.Status),
	}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), userID, req.toOffer())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	offer := req.toOffer()
	offer.ID = jobID
	updated, err := h.jobs.Update(r.Context(), userID, offer)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.SetStatus(r.Context(), userID, jobID, job.Status(req.Status)); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), userID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

// ListActive serves the public catalog. Authentication is optional; a
// candidate token additionally marks offers they already applied to.
func (h *JobHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := job.ActiveFilter{
		Type:     job.Type(strings.TrimSpace(query.Get("type"))),
		Location: strings.TrimSpace(query.Get("location")),
		Search:   strings.TrimSpace(query.Get("search")),
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	views, err := h.jobs.ListActive(r.Context(), filter, userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, views)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	offer, err := h.jobs.GetActive(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, offer)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	offers, err := h.jobs.ListByEnterprise(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, offers)
}

func (h *JobHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	offers, err := h.jobs.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, offers)
}

func (h *JobHandler) DeleteAny(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.DeleteAny(r.Context(), jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
