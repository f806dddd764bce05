package service

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"placement_portal/model"
	"placement_portal/repository"
)

// JobService owns the job lifecycle on the company side: draft creation and
// closing. Admin approval lives in AdminService.
type JobService struct {
	db          *gorm.DB
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
}

func NewJobService(
	db *gorm.DB,
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
) *JobService {
	return &JobService{
		db:          db,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// PostJob creates a draft job for the company user. The company must have
// completed its profile first since jobs hang off the profile row.
func (s *JobService) PostJob(companyUserID int64, title, skills, salary string) (*model.Job, error) {
	profile, err := s.companyRepo.FindByUserID(companyUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}

	job := &model.Job{
		CompanyID: profile.ID,
		Title:     title,
		Skills:    skills,
		Salary:    salary,
	}
	if err := s.jobRepo.Save(job); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"job_id":     job.ID,
		"company_id": profile.ID,
	}).Info("job drafted, awaiting approval")
	return job, nil
}

// CloseJob marks an approved job as filled. Only the owning company may
// close it, only approved jobs can be closed, and closing is terminal.
func (s *JobService) CloseJob(companyUserID, jobID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		jobs := repository.NewJobRepository(tx)
		companies := repository.NewCompanyRepository(tx)

		job, err := jobs.FindByID(jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrNotFound
		}

		profile, err := companies.FindByUserID(companyUserID)
		if err != nil {
			return err
		}
		if profile == nil || profile.ID != job.CompanyID {
			return ErrForbidden
		}

		if !job.Approved || job.Closed {
			return ErrJobNotOpen
		}

		job.Closed = true
		return jobs.Update(job)
	})
}

// CompanyJobs lists the jobs owned by a company user, drafts included.
func (s *JobService) CompanyJobs(companyUserID int64) ([]*model.Job, error) {
	profile, err := s.companyRepo.FindByUserID(companyUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return s.jobRepo.FindByCompany(profile.ID)
}

// OpenJobs lists the jobs students may apply to.
func (s *JobService) OpenJobs() ([]*model.Job, error) {
	return s.jobRepo.FindOpen()
}
