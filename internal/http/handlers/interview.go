package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"lavoro/internal/app"
	"lavoro/internal/common"
	"lavoro/internal/domain/interview"
	"lavoro/internal/http/middleware"
	"lavoro/internal/http/response"
)

type InterviewHandler struct {
	interviews *app.InterviewService
}

func NewInterviewHandler(interviews *app.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type scheduleRequest struct {
	ApplicationID string `json:"application_id"`
	Date          string `json:"date"`
	MeetingLink   string `json:"meeting_link"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	fields := map[string]string{}
	applicationID, err := common.ParseUUID(strings.TrimSpace(req.ApplicationID))
	if err != nil {
		fields["application_id"] = "valid application_id is required"
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		fields["date"] = "date must be RFC 3339, e.g. 2026-09-01T10:00:00Z"
	}
	if strings.TrimSpace(req.MeetingLink) == "" {
		fields["meeting_link"] = "meeting_link is required"
	}
	if len(fields) > 0 {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}
	scheduled, err := h.interviews.Schedule(r.Context(), applicationID, date, strings.TrimSpace(req.MeetingLink))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, scheduled)
}

type interviewStatusRequest struct {
	Status string `json:"status"`
}

func (h *InterviewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	interviewID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req interviewStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status, ok := interview.ParseStatus(req.Status)
	if !ok {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "unknown status"}))
		return
	}
	if err := h.interviews.SetStatus(r.Context(), interviewID, status); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *InterviewHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	limit := 20
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"limit": "limit must be a positive integer"}))
			return
		}
		limit = parsed
	}
	items, err := h.interviews.UpcomingForCandidate(r.Context(), userID, limit)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *InterviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.interviews.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
