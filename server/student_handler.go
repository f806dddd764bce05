package server

import (
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"placement_portal/service"
)

func (s *Server) handleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	profile, err := s.profiles.StudentProfile(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	jobs, err := s.jobs.OpenJobs()
	if err != nil {
		serviceError(w, err)
		return
	}

	apps, err := s.apps.StudentApplications(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	render(w, http.StatusOK, "student_dashboard.html", map[string]any{
		"User":         user,
		"Profile":      profile,
		"Jobs":         jobs,
		"Applications": apps,
		"Flashes":      s.popFlashes(w, r),
	})
}

func (s *Server) handleStudentProfileForm(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	profile, err := s.profiles.StudentProfile(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	render(w, http.StatusOK, "student_profile.html", map[string]any{
		"User":    user,
		"Profile": profile,
	})
}

func (s *Server) handleStudentProfileSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	user := currentUser(r)

	cgpa, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("cgpa")), 64)
	if err != nil || cgpa < 0 || cgpa > 10 {
		render(w, http.StatusBadRequest, "student_profile.html", map[string]any{
			"User":  user,
			"Error": "CGPA must be a number between 0 and 10.",
		})
		return
	}

	input := service.StudentProfileInput{
		Department: strings.TrimSpace(r.FormValue("department")),
		CGPA:       cgpa,
		Resume:     strings.TrimSpace(r.FormValue("resume")),
	}

	if _, err := s.profiles.UpsertStudentProfile(user.ID, input); err != nil {
		log.WithError(err).Error("student profile upsert failed")
		serviceError(w, err)
		return
	}

	http.Redirect(w, r, "/student_dashboard", http.StatusSeeOther)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	if _, err := s.apps.Apply(currentUser(r).ID, jobID); err != nil {
		serviceError(w, err)
		return
	}

	s.addFlash(w, r, "Application filed.")
	http.Redirect(w, r, "/student_dashboard", http.StatusSeeOther)
}
