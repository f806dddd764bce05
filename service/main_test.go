package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"placement_portal/config"
	"placement_portal/model"
	"placement_portal/repository"
)

func adminConfig(name, email, password string) config.AdminConfig {
	return config.AdminConfig{Name: name, Email: email, Password: password}
}

// newTestDB opens an in-memory sqlite store with the full schema. One
// connection only, so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := NewBootstrapService(db).EnsureSchema(); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		db,
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		time.Hour,
	)
}

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(
		db,
		repository.NewCompanyRepository(db),
		repository.NewStudentRepository(db),
	)
}

func newJobService(db *gorm.DB) *JobService {
	return NewJobService(
		db,
		repository.NewJobRepository(db),
		repository.NewCompanyRepository(db),
	)
}

func newApplicationService(db *gorm.DB) *ApplicationService {
	return NewApplicationService(
		db,
		repository.NewApplicationRepository(db),
		repository.NewJobRepository(db),
		repository.NewStudentRepository(db),
		repository.NewCompanyRepository(db),
	)
}

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(
		db,
		repository.NewUserRepository(db),
		repository.NewJobRepository(db),
	)
}

// registerCompanyWithProfile registers an approved company user and submits
// its profile, returning the user.
func registerCompanyWithProfile(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user, err := newAuthService(db).Register("Acme", email, "secret", "company")
	if err != nil {
		t.Fatalf("register company: %v", err)
	}
	if err := newAdminService(db).ApproveCompany(user.ID); err != nil {
		t.Fatalf("approve company: %v", err)
	}
	if _, err := newProfileService(db).UpsertCompanyProfile(user.ID, CompanyProfileInput{
		CompanyName: "Acme Corp",
		Industry:    "Software",
	}); err != nil {
		t.Fatalf("upsert company profile: %v", err)
	}
	user.Approved = true
	return user
}

// registerStudentWithProfile registers a student user with a profile.
func registerStudentWithProfile(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user, err := newAuthService(db).Register("Priya", email, "secret", "student")
	if err != nil {
		t.Fatalf("register student: %v", err)
	}
	if _, err := newProfileService(db).UpsertStudentProfile(user.ID, StudentProfileInput{
		Department: "CS",
		CGPA:       8.5,
	}); err != nil {
		t.Fatalf("upsert student profile: %v", err)
	}
	return user
}

// postApprovedJob drafts a job for the company user and approves it.
func postApprovedJob(t *testing.T, db *gorm.DB, companyUserID int64) *model.Job {
	t.Helper()

	job, err := newJobService(db).PostJob(companyUserID, "Backend Engineer", "Go", "12 LPA")
	if err != nil {
		t.Fatalf("post job: %v", err)
	}
	if err := newAdminService(db).ApproveJob(job.ID); err != nil {
		t.Fatalf("approve job: %v", err)
	}
	job.Approved = true
	return job
}
