package repository

import (
	"errors"

	"gorm.io/gorm"

	"placement_portal/model"
)

// StudentRepository is the student profile store.
type StudentRepository interface {
	FindByID(id int64) (*model.StudentProfile, error)
	FindByUserID(userID int64) (*model.StudentProfile, error)
	Save(profile *model.StudentProfile) error
	Update(profile *model.StudentProfile) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(id int64) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *studentRepository) FindByUserID(userID int64) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *studentRepository) Save(profile *model.StudentProfile) error {
	return r.db.Create(profile).Error
}

func (r *studentRepository) Update(profile *model.StudentProfile) error {
	return r.db.Save(profile).Error
}
