package service

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"placement_portal/model"
	"placement_portal/repository"
)

// AdminService owns the approval queue: company accounts and draft jobs.
type AdminService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
}

func NewAdminService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
) *AdminService {
	return &AdminService{
		db:       db,
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

// PendingCompanies lists company accounts waiting for approval.
func (s *AdminService) PendingCompanies() ([]*model.User, error) {
	return s.userRepo.FindPendingCompanies()
}

// PendingJobs lists draft jobs waiting for approval.
func (s *AdminService) PendingJobs() ([]*model.Job, error) {
	return s.jobRepo.FindPending()
}

// ApproveCompany flips the approval flag on a company account. Approving
// an already-approved company is a no-op, not an error.
func (s *AdminService) ApproveCompany(userID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		user, err := users.FindByID(userID)
		if err != nil {
			return err
		}
		if user == nil || user.Role != model.RoleCompany {
			return ErrNotFound
		}
		if user.Approved {
			return nil
		}

		user.Approved = true
		if err := users.Update(user); err != nil {
			return err
		}
		log.WithField("user_id", user.ID).Info("company approved")
		return nil
	})
}

// ApproveJob makes a draft job visible to students. Idempotent like
// ApproveCompany. Closed jobs stay closed.
func (s *AdminService) ApproveJob(jobID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		jobs := repository.NewJobRepository(tx)

		job, err := jobs.FindByID(jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrNotFound
		}
		if job.Approved {
			return nil
		}

		job.Approved = true
		if err := jobs.Update(job); err != nil {
			return err
		}
		log.WithField("job_id", job.ID).Info("job approved")
		return nil
	})
}
