package server

import (
	"net/http"
	"strconv"
)

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	companies, err := s.admin.PendingCompanies()
	if err != nil {
		serviceError(w, err)
		return
	}

	jobs, err := s.admin.PendingJobs()
	if err != nil {
		serviceError(w, err)
		return
	}

	render(w, http.StatusOK, "admin.html", map[string]any{
		"User":             currentUser(r),
		"PendingCompanies": companies,
		"PendingJobs":      jobs,
		"Flashes":          s.popFlashes(w, r),
	})
}

func (s *Server) handleApproveCompany(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	if err := s.admin.ApproveCompany(userID); err != nil {
		serviceError(w, err)
		return
	}

	s.addFlash(w, r, "Company approved.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleApproveJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	if err := s.admin.ApproveJob(jobID); err != nil {
		serviceError(w, err)
		return
	}

	s.addFlash(w, r, "Job approved.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
