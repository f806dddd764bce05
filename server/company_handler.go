package server

import (
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"placement_portal/model"
	"placement_portal/service"
)

// jobListing pairs a job with its applications for the dashboard view.
type jobListing struct {
	Job          *model.Job
	Applications []*model.Application
}

func (s *Server) handleCompanyDashboard(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	profile, err := s.profiles.CompanyProfile(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	if profile == nil {
		http.Redirect(w, r, "/complete-company-profile", http.StatusSeeOther)
		return
	}

	jobs, err := s.jobs.CompanyJobs(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	listings := make([]jobListing, 0, len(jobs))
	for _, job := range jobs {
		apps, err := s.apps.JobApplications(user.ID, job.ID)
		if err != nil {
			serviceError(w, err)
			return
		}
		listings = append(listings, jobListing{Job: job, Applications: apps})
	}

	render(w, http.StatusOK, "company_dashboard.html", map[string]any{
		"User":    user,
		"Profile": profile,
		"Jobs":    listings,
		"Flashes": s.popFlashes(w, r),
	})
}

func (s *Server) handleCompanyProfileForm(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	profile, err := s.profiles.CompanyProfile(user.ID)
	if err != nil {
		serviceError(w, err)
		return
	}

	render(w, http.StatusOK, "company_profile.html", map[string]any{
		"User":    user,
		"Profile": profile,
	})
}

func (s *Server) handleCompanyProfileSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	user := currentUser(r)
	input := service.CompanyProfileInput{
		CompanyName: strings.TrimSpace(r.FormValue("company_name")),
		Industry:    strings.TrimSpace(r.FormValue("industry")),
		Website:     strings.TrimSpace(r.FormValue("website")),
		Description: r.FormValue("description"),
		Location:    strings.TrimSpace(r.FormValue("location")),
		CompanySize: strings.TrimSpace(r.FormValue("company_size")),
	}

	if input.CompanyName == "" {
		render(w, http.StatusBadRequest, "company_profile.html", map[string]any{
			"User":  user,
			"Error": "Company name is required.",
		})
		return
	}

	if _, err := s.profiles.UpsertCompanyProfile(user.ID, input); err != nil {
		log.WithError(err).Error("company profile upsert failed")
		serviceError(w, err)
		return
	}

	http.Redirect(w, r, "/company_dashboard", http.StatusSeeOther)
}

func (s *Server) handlePostJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		renderError(w, http.StatusBadRequest, "Job title is required.")
		return
	}

	user := currentUser(r)
	_, err := s.jobs.PostJob(user.ID, title, strings.TrimSpace(r.FormValue("skills")), strings.TrimSpace(r.FormValue("salary")))
	if err != nil {
		serviceError(w, err)
		return
	}

	s.addFlash(w, r, "Job submitted, it becomes visible once an admin approves it.")
	http.Redirect(w, r, "/company_dashboard", http.StatusSeeOther)
}

func (s *Server) handleCloseJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid job id.")
		return
	}

	if err := s.jobs.CloseJob(currentUser(r).ID, jobID); err != nil {
		serviceError(w, err)
		return
	}

	s.addFlash(w, r, "Job closed.")
	http.Redirect(w, r, "/company_dashboard", http.StatusSeeOther)
}

func (s *Server) handleApplicationStatus(w http.ResponseWriter, r *http.Request) {
	appID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, "Invalid application id.")
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Could not read the form.")
		return
	}

	_, err = s.apps.UpdateStatus(currentUser(r).ID, appID, r.FormValue("status"))
	if err != nil {
		serviceError(w, err)
		return
	}

	http.Redirect(w, r, "/company_dashboard", http.StatusSeeOther)
}
