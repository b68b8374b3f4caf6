package handlers

import (
	"net/http"
	"strings"
	"time"

	"lavoro/internal/app"
	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/user"
	"lavoro/internal/http/middleware"
	"lavoro/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	JobOfferID string `json:"job_offer_id"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.JobOfferID) == "" {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_offer_id": "job_offer_id is required"}))
		return
	}
	jobOfferID, err := common.ParseUUID(req.JobOfferID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_offer_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + userID.String()
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), userID, jobOfferID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List serves the role-appropriate view: candidates see their own
// applications, enterprises the ones against their offers, admins all.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	var (
		views []app.ApplicationView
		err   error
	)
	switch role {
	case user.RoleCandidate:
		views, err = h.applications.ListForCandidate(r.Context(), userID)
	case user.RoleEnterprise:
		views, err = h.applications.ListForEnterprise(r.Context(), userID)
	case user.RoleAdmin:
		views, err = h.applications.ListAll(r.Context())
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, views)
}

func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	jobOfferID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	views, err := h.applications.ListForJob(r.Context(), jobOfferID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, views)
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status, ok := application.ParseStatus(req.Status)
	if !ok {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "unknown status"}))
		return
	}
	updated, err := h.applications.SetStatus(r.Context(), applicationID, status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type anonymityRequest struct {
	Anonymous bool `json:"anonymous"`
}

func (h *ApplicationHandler) UpdateAnonymity(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req anonymityRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.SetAnonymity(r.Context(), applicationID, req.Anonymous); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"anonymous": req.Anonymous})
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Delete(r.Context(), applicationID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}
