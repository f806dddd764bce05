package repository

import (
	"errors"

	"gorm.io/gorm"

	"placement_portal/model"
)

// JobRepository is the job posting store.
type JobRepository interface {
	FindByID(id int64) (*model.Job, error)
	FindByCompany(companyID int64) ([]*model.Job, error)
	FindOpen() ([]*model.Job, error)
	FindPending() ([]*model.Job, error)
	Save(job *model.Job) error
	Update(job *model.Job) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindByID(id int64) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) FindByCompany(companyID int64) ([]*model.Job, error) {
	var jobs []*model.Job
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// FindOpen returns the jobs visible to students: approved and not closed,
// newest first, with the owning company preloaded for rendering.
func (r *jobRepository) FindOpen() ([]*model.Job, error) {
	var jobs []*model.Job
	err := r.db.Preload("Company").
		Where("is_approved = ? AND is_closed = ?", true, false).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// FindPending returns draft jobs waiting for admin approval.
func (r *jobRepository) FindPending() ([]*model.Job, error) {
	var jobs []*model.Job
	err := r.db.Preload("Company").
		Where("is_approved = ?", false).
		Order("created_at").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Save(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}
