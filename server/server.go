package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"placement_portal/config"
	"placement_portal/model"
	"placement_portal/service"
)

// Server wires the HTTP surface to the services. Handlers stay thin: parse
// the form, call one service method, map the error, render or redirect.
type Server struct {
	cookieName string
	auth       *service.AuthService
	profiles   *service.ProfileService
	jobs       *service.JobService
	apps       *service.ApplicationService
	admin      *service.AdminService
	flash      sessions.Store
}

func NewServer(
	cfg config.SessionConfig,
	auth *service.AuthService,
	profiles *service.ProfileService,
	jobs *service.JobService,
	apps *service.ApplicationService,
	admin *service.AdminService,
) *Server {
	return &Server{
		cookieName: cfg.CookieName,
		auth:       auth,
		profiles:   profiles,
		jobs:       jobs,
		apps:       apps,
		admin:      admin,
		flash:      newFlashStore(cfg.SecretKey),
	}
}

// Handler builds the route table. Every route passes withUser; the
// require* wrappers add the per-route gates.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)

	mux.HandleFunc("GET /register", s.handleRegisterPage)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.HandleFunc("GET /company_dashboard",
		s.requireApproved(model.RoleCompany, s.handleCompanyDashboard))
	mux.HandleFunc("GET /complete-company-profile",
		s.requireRole(model.RoleCompany, s.handleCompanyProfileForm))
	mux.HandleFunc("POST /complete-company-profile",
		s.requireRole(model.RoleCompany, s.handleCompanyProfileSubmit))
	mux.HandleFunc("POST /jobs",
		s.requireApproved(model.RoleCompany, s.handlePostJob))
	mux.HandleFunc("POST /jobs/{id}/close",
		s.requireApproved(model.RoleCompany, s.handleCloseJob))
	mux.HandleFunc("POST /applications/{id}/status",
		s.requireApproved(model.RoleCompany, s.handleApplicationStatus))

	mux.HandleFunc("GET /student_dashboard",
		s.requireRole(model.RoleStudent, s.handleStudentDashboard))
	mux.HandleFunc("GET /complete-student-profile",
		s.requireRole(model.RoleStudent, s.handleStudentProfileForm))
	mux.HandleFunc("POST /complete-student-profile",
		s.requireRole(model.RoleStudent, s.handleStudentProfileSubmit))
	mux.HandleFunc("POST /jobs/{id}/apply",
		s.requireRole(model.RoleStudent, s.handleApply))

	mux.HandleFunc("GET /admin",
		s.requireRole(model.RoleAdmin, s.handleAdminDashboard))
	mux.HandleFunc("POST /admin/companies/{id}/approve",
		s.requireRole(model.RoleAdmin, s.handleApproveCompany))
	mux.HandleFunc("POST /admin/jobs/{id}/approve",
		s.requireRole(model.RoleAdmin, s.handleApproveJob))

	return s.withUser(mux)
}

// statusForError maps the service failure taxonomy onto HTTP statuses.
func statusForError(err error) int {
	var transition *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrAdminRegistration),
		errors.Is(err, service.ErrProfileRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotApproved):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrJobNotOpen),
		errors.As(err, &transition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// serviceError renders the shared error view for a service failure.
// Internal errors get a generic message so store details never leak.
func serviceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Something went wrong."
	}
	renderError(w, status, message)
}

// roleLanding is the post-login landing view per role.
func roleLanding(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleCompany:
		return "/company_dashboard"
	default:
		return "/student_dashboard"
	}
}
