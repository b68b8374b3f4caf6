package http

import (
	"net/http"
	"strings"
	"time"

	"lavoro/internal/domain/user"
	"lavoro/internal/http/handlers"
	"lavoro/internal/http/metrics"
	httpmw "lavoro/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	ProfileHandler      *handlers.ProfileHandler
	JobHandler          *handlers.JobHandler
	ApplicationHandler  *handlers.ApplicationHandler
	InterviewHandler    *handlers.InterviewHandler
	NotificationHandler *handlers.NotificationHandler
	AdminHandler        *handlers.AdminHandler
	MetricsHandler      *handlers.MetricsHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.AuthMiddleware.OptionalAuthenticate(http.HandlerFunc(r.deps.JobHandler.ListActive)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && !strings.HasSuffix(path, "/applications"):
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/interviews") || strings.HasPrefix(path, "/notifications") || strings.HasPrefix(path, "/candidates") || strings.HasPrefix(path, "/enterprises") || strings.HasPrefix(path, "/admin") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/candidates/profile":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ProfileHandler.GetCandidate)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && path == "/candidates/profile":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ProfileHandler.UpdateCandidate)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/enterprises/profile":
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.ProfileHandler.GetEnterprise)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && path == "/enterprises/profile":
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.ProfileHandler.UpdateEnterprise)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/enterprises/jobs":
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.JobHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleEnterprise)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applications"):
		httpmw.RequireRole(user.RoleEnterprise, user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.ListForJob)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleEnterprise, user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/anonymity"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateAnonymity)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/interviews":
		httpmw.RequireRole(user.RoleEnterprise, user.RoleAdmin)(http.HandlerFunc(r.deps.InterviewHandler.Schedule)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/interviews/upcoming":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.InterviewHandler.Upcoming)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/interviews/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleEnterprise, user.RoleAdmin)(http.HandlerFunc(r.deps.InterviewHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications/unread":
		r.deps.NotificationHandler.UnreadCount(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	case req.Method == http.MethodPost && path == "/notifications/read-all":
		r.deps.NotificationHandler.MarkAllRead(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/stats":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.Stats)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/users":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.ListUsers)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/admin/users/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.GetUser)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/users/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.UpdateUserStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/users/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AdminHandler.DeleteUser)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/jobs":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.ListAll)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/jobs/"):
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.DeleteAny)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/interviews":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.InterviewHandler.ListAll)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
