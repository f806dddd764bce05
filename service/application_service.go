package service

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"placement_portal/model"
	"placement_portal/repository"
)

// ApplicationService owns the student/company sides of an application:
// applying to open jobs and walking the status machine.
type ApplicationService struct {
	db          *gorm.DB
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	studentRepo repository.StudentRepository
	companyRepo repository.CompanyRepository
}

func NewApplicationService(
	db *gorm.DB,
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	studentRepo repository.StudentRepository,
	companyRepo repository.CompanyRepository,
) *ApplicationService {
	return &ApplicationService{
		db:          db,
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		studentRepo: studentRepo,
		companyRepo: companyRepo,
	}
}

// Apply files an application for a student user against an open job. At
// most one application per (job, student) pair; the transaction's duplicate
// check is backed by the composite unique index.
func (s *ApplicationService) Apply(studentUserID, jobID int64) (*model.Application, error) {
	var app *model.Application
	err := s.db.Transaction(func(tx *gorm.DB) error {
		apps := repository.NewApplicationRepository(tx)
		jobs := repository.NewJobRepository(tx)
		students := repository.NewStudentRepository(tx)

		profile, err := students.FindByUserID(studentUserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrProfileRequired
		}

		job, err := jobs.FindByID(jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrNotFound
		}
		if !job.Open() {
			return ErrJobNotOpen
		}

		exists, err := apps.Exists(job.ID, profile.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyApplied
		}

		app = &model.Application{
			JobID:     job.ID,
			StudentID: profile.ID,
			Status:    model.StatusApplied,
			AppliedAt: time.Now(),
		}
		return apps.Save(app)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"student_id":     app.StudentID,
	}).Info("application filed")
	return app, nil
}

// UpdateStatus moves an application along the status machine. Only the
// company owning the job may do it, and only along an allowed transition.
func (s *ApplicationService) UpdateStatus(companyUserID, applicationID int64, statusValue string) (*model.Application, error) {
	status, err := model.ParseApplicationStatus(statusValue)
	if err != nil {
		return nil, err
	}

	var app *model.Application
	err = s.db.Transaction(func(tx *gorm.DB) error {
		apps := repository.NewApplicationRepository(tx)
		companies := repository.NewCompanyRepository(tx)

		found, err := apps.FindByID(applicationID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrNotFound
		}

		profile, err := companies.FindByUserID(companyUserID)
		if err != nil {
			return err
		}
		if profile == nil || profile.ID != found.Job.CompanyID {
			return ErrForbidden
		}

		if !model.CanTransition(found.Status, status) {
			return &InvalidTransitionError{From: found.Status, To: status}
		}

		found.Status = status
		app = found
		return apps.Update(found)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"application_id": app.ID,
		"status":         app.Status,
	}).Info("application status updated")
	return app, nil
}

// StudentApplications lists a student user's applications, newest first.
func (s *ApplicationService) StudentApplications(studentUserID int64) ([]*model.Application, error) {
	profile, err := s.studentRepo.FindByUserID(studentUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return s.appRepo.FindByStudent(profile.ID)
}

// JobApplications lists the applications to one of the company's own jobs.
func (s *ApplicationService) JobApplications(companyUserID, jobID int64) ([]*model.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	profile, err := s.companyRepo.FindByUserID(companyUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != job.CompanyID {
		return nil, ErrForbidden
	}

	return s.appRepo.FindByJob(jobID)
}
