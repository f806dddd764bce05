package repository

import (
	"errors"

	"gorm.io/gorm"

	"placement_portal/model"
)

// CompanyRepository is the company profile store.
type CompanyRepository interface {
	FindByID(id int64) (*model.CompanyProfile, error)
	FindByUserID(userID int64) (*model.CompanyProfile, error)
	Save(profile *model.CompanyProfile) error
	Update(profile *model.CompanyProfile) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindByID(id int64) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *companyRepository) FindByUserID(userID int64) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *companyRepository) Save(profile *model.CompanyProfile) error {
	return r.db.Create(profile).Error
}

func (r *companyRepository) Update(profile *model.CompanyProfile) error {
	return r.db.Save(profile).Error
}
