package repository

import (
	"errors"

	"gorm.io/gorm"

	"placement_portal/model"
)

// ApplicationRepository is the application store.
type ApplicationRepository interface {
	FindByID(id int64) (*model.Application, error)
	FindByJob(jobID int64) ([]*model.Application, error)
	FindByStudent(studentID int64) ([]*model.Application, error)
	Exists(jobID, studentID int64) (bool, error)
	Save(app *model.Application) error
	Update(app *model.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindByID(id int64) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Job").First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &app, err
}

func (r *applicationRepository) FindByJob(jobID int64) ([]*model.Application, error) {
	var apps []*model.Application
	err := r.db.Preload("Student").Preload("Student.User").
		Where("job_id = ?", jobID).
		Order("applied_at").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByStudent(studentID int64) ([]*model.Application, error) {
	var apps []*model.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

// Exists reports whether the student already applied to the job.
func (r *applicationRepository) Exists(jobID, studentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("job_id = ? AND student_id = ?", jobID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) Save(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) Update(app *model.Application) error {
	return r.db.Save(app).Error
}
