package service

import (
	"gorm.io/gorm"

	"placement_portal/model"
	"placement_portal/repository"
)

// CompanyProfileInput carries the company profile form fields.
type CompanyProfileInput struct {
	CompanyName string
	Industry    string
	Website     string
	Description string
	Location    string
	CompanySize string
}

// StudentProfileInput carries the student profile form fields.
type StudentProfileInput struct {
	Department string
	CGPA       float64
	Resume     string
}

// ProfileService upserts the 1:1 profile extensions. Reachable before a
// company is approved: the profile is exactly what the admin reviews.
type ProfileService struct {
	db          *gorm.DB
	companyRepo repository.CompanyRepository
	studentRepo repository.StudentRepository
}

func NewProfileService(
	db *gorm.DB,
	companyRepo repository.CompanyRepository,
	studentRepo repository.StudentRepository,
) *ProfileService {
	return &ProfileService{
		db:          db,
		companyRepo: companyRepo,
		studentRepo: studentRepo,
	}
}

// UpsertCompanyProfile inserts the profile on first submission and mutates
// it in place afterwards. Exactly one row per company user either way.
func (s *ProfileService) UpsertCompanyProfile(userID int64, input CompanyProfileInput) (*model.CompanyProfile, error) {
	var profile *model.CompanyProfile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		companies := repository.NewCompanyRepository(tx)

		existing, err := companies.FindByUserID(userID)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &model.CompanyProfile{UserID: userID}
		}

		existing.CompanyName = input.CompanyName
		existing.Industry = input.Industry
		existing.Website = input.Website
		existing.Description = input.Description
		existing.Location = input.Location
		existing.CompanySize = input.CompanySize

		if existing.ID == 0 {
			err = companies.Save(existing)
		} else {
			err = companies.Update(existing)
		}
		profile = existing
		return err
	})
	return profile, err
}

// UpsertStudentProfile mirrors UpsertCompanyProfile for students.
func (s *ProfileService) UpsertStudentProfile(userID int64, input StudentProfileInput) (*model.StudentProfile, error) {
	var profile *model.StudentProfile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		students := repository.NewStudentRepository(tx)

		existing, err := students.FindByUserID(userID)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &model.StudentProfile{UserID: userID}
		}

		existing.Department = input.Department
		existing.CGPA = input.CGPA
		existing.Resume = input.Resume

		if existing.ID == 0 {
			err = students.Save(existing)
		} else {
			err = students.Update(existing)
		}
		profile = existing
		return err
	})
	return profile, err
}

// CompanyProfile returns the profile for a company user, nil when the form
// was never submitted.
func (s *ProfileService) CompanyProfile(userID int64) (*model.CompanyProfile, error) {
	return s.companyRepo.FindByUserID(userID)
}

// StudentProfile returns the profile for a student user, nil when absent.
func (s *ProfileService) StudentProfile(userID int64) (*model.StudentProfile, error) {
	return s.studentRepo.FindByUserID(userID)
}
