package service

import (
	"errors"
	"testing"

	"placement_portal/model"
)

func TestApply(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	app, err := apps.Apply(student.ID, job.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != model.StatusApplied {
		t.Errorf("new application status = %s, want Applied", app.Status)
	}
	if app.AppliedAt.IsZero() {
		t.Error("applied timestamp not set")
	}
}

func TestApplyRequiresProfile(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	job := postApprovedJob(t, db, company.ID)

	bare, err := auth.Register("NoProfile", "bare@x.com", "secret", "student")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := apps.Apply(bare.ID, job.ID); !errors.Is(err, ErrProfileRequired) {
		t.Errorf("apply without profile: got %v, want ErrProfileRequired", err)
	}
}

func TestApplyDuplicate(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	if _, err := apps.Apply(student.ID, job.ID); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := apps.Apply(student.ID, job.ID); !errors.Is(err, ErrAlreadyApplied) {
		t.Errorf("second apply: got %v, want ErrAlreadyApplied", err)
	}

	var count int64
	db.Model(&model.Application{}).Count(&count)
	if count != 1 {
		t.Errorf("%d applications, want 1", count)
	}
}

func TestApplyGating(t *testing.T) {
	db := newTestDB(t)
	jobs := newJobService(db)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")

	draft, err := jobs.PostJob(company.ID, "Draft Role", "Go", "10 LPA")
	if err != nil {
		t.Fatalf("post job: %v", err)
	}
	if _, err := apps.Apply(student.ID, draft.ID); !errors.Is(err, ErrJobNotOpen) {
		t.Errorf("apply to draft: got %v, want ErrJobNotOpen", err)
	}

	closed := postApprovedJob(t, db, company.ID)
	if err := jobs.CloseJob(company.ID, closed.ID); err != nil {
		t.Fatalf("close job: %v", err)
	}
	if _, err := apps.Apply(student.ID, closed.ID); !errors.Is(err, ErrJobNotOpen) {
		t.Errorf("apply to closed job: got %v, want ErrJobNotOpen", err)
	}

	if _, err := apps.Apply(student.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("apply to missing job: got %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	app, err := apps.Apply(student.ID, job.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	updated, err := apps.UpdateStatus(company.ID, app.ID, "Shortlisted")
	if err != nil {
		t.Fatalf("shortlist: %v", err)
	}
	if updated.Status != model.StatusShortlisted {
		t.Errorf("status = %s, want Shortlisted", updated.Status)
	}

	if _, err := apps.UpdateStatus(company.ID, app.ID, "Hired"); err != nil {
		t.Fatalf("hire: %v", err)
	}

	// Hired is terminal
	var transition *InvalidTransitionError
	_, err = apps.UpdateStatus(company.ID, app.ID, "Rejected")
	if !errors.As(err, &transition) {
		t.Fatalf("transition out of Hired: got %v, want InvalidTransitionError", err)
	}
	if transition.From != model.StatusHired || transition.To != model.StatusRejected {
		t.Errorf("transition error carries %s -> %s", transition.From, transition.To)
	}
}

func TestUpdateStatusSkipRejected(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	app, err := apps.Apply(student.ID, job.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Applied -> Hired must pass through Shortlisted
	var transition *InvalidTransitionError
	if _, err := apps.UpdateStatus(company.ID, app.ID, "Hired"); !errors.As(err, &transition) {
		t.Errorf("Applied -> Hired: got %v, want InvalidTransitionError", err)
	}

	// Applied -> Rejected is a direct transition
	if _, err := apps.UpdateStatus(company.ID, app.ID, "Rejected"); err != nil {
		t.Errorf("Applied -> Rejected: %v", err)
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	rival := registerCompanyWithProfile(t, db, "rival@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	app, err := apps.Apply(student.ID, job.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := apps.UpdateStatus(rival.ID, app.ID, "Shortlisted"); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign status update: got %v, want ErrForbidden", err)
	}
	if _, err := apps.UpdateStatus(company.ID, 9999, "Shortlisted"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing application: got %v, want ErrNotFound", err)
	}
	if _, err := apps.UpdateStatus(company.ID, app.ID, "Pending"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestApplicationListings(t *testing.T) {
	db := newTestDB(t)
	apps := newApplicationService(db)

	company := registerCompanyWithProfile(t, db, "acme@x.com")
	student := registerStudentWithProfile(t, db, "priya@x.com")
	job := postApprovedJob(t, db, company.ID)

	if _, err := apps.Apply(student.ID, job.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}

	mine, err := apps.StudentApplications(student.ID)
	if err != nil {
		t.Fatalf("student applications: %v", err)
	}
	if len(mine) != 1 || mine[0].Job.Title != "Backend Engineer" {
		t.Errorf("student listing wrong: %d entries", len(mine))
	}

	incoming, err := apps.JobApplications(company.ID, job.ID)
	if err != nil {
		t.Fatalf("job applications: %v", err)
	}
	if len(incoming) != 1 || incoming[0].Student.User.Name != "Priya" {
		t.Errorf("company listing wrong: %d entries", len(incoming))
	}

	rival := registerCompanyWithProfile(t, db, "rival@x.com")
	if _, err := apps.JobApplications(rival.ID, job.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign job listing: got %v, want ErrForbidden", err)
	}
}
