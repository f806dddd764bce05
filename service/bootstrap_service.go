package service

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"placement_portal/config"
	"placement_portal/model"
	"placement_portal/repository"
	"placement_portal/utils"
)

// BootstrapService prepares the store at process start: schema migration,
// the admin singleton and optional demo fixtures.
type BootstrapService struct {
	db *gorm.DB
}

func NewBootstrapService(db *gorm.DB) *BootstrapService {
	return &BootstrapService{db: db}
}

// EnsureSchema migrates the five domain tables plus sessions.
func (s *BootstrapService) EnsureSchema() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.CompanyProfile{},
		&model.Job{},
		&model.Application{},
		&model.Session{},
	)
}

// EnsureAdmin guarantees exactly one admin account, keyed by email. When no
// password is configured a random one is generated and logged once so the
// operator can log in and no fixed credential ever ships.
func (s *BootstrapService) EnsureAdmin(cfg config.AdminConfig) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		existing, err := users.FindByEmail(cfg.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.Role != model.RoleAdmin {
				return fmt.Errorf("admin email %s is taken by a %s account", cfg.Email, existing.Role)
			}
			return nil
		}

		password := cfg.Password
		if password == "" {
			password = uuid.NewString()
			log.WithField("password", password).
				Warn("no admin password configured, generated one; set admin.password to silence this")
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		admin := &model.User{
			Name:         cfg.Name,
			Email:        cfg.Email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			Approved:     true,
		}
		if err := users.Save(admin); err != nil {
			return err
		}
		log.WithField("email", admin.Email).Info("seeded admin account")
		return nil
	})
}

// seedFile is the yaml fixture layout. Passwords are plaintext in the file
// and hashed on load; fixtures are for demos, not production.
type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Approved *bool  `yaml:"approved"`

	Company *seedCompanyProfile `yaml:"company_profile"`
	Student *seedStudentProfile `yaml:"student_profile"`
	Jobs    []seedJob           `yaml:"jobs"`
}

type seedCompanyProfile struct {
	CompanyName string `yaml:"company_name"`
	Industry    string `yaml:"industry"`
	Website     string `yaml:"website"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	CompanySize string `yaml:"company_size"`
}

type seedStudentProfile struct {
	Department string  `yaml:"department"`
	CGPA       float64 `yaml:"cgpa"`
	Resume     string  `yaml:"resume"`
}

type seedJob struct {
	Title    string `yaml:"title"`
	Skills   string `yaml:"skills"`
	Salary   string `yaml:"salary"`
	Approved bool   `yaml:"approved"`
}

// LoadFixtures loads demo users, profiles and jobs from a yaml file.
// Existing emails are skipped so the loader is safe to run repeatedly.
func (s *BootstrapService) LoadFixtures(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		companies := repository.NewCompanyRepository(tx)
		students := repository.NewStudentRepository(tx)
		jobs := repository.NewJobRepository(tx)

		for _, entry := range seed.Users {
			role, err := model.ParseRole(entry.Role)
			if err != nil {
				return err
			}

			existing, err := users.FindByEmail(entry.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			hash, err := utils.HashPassword(entry.Password)
			if err != nil {
				return err
			}

			approved := role != model.RoleCompany
			if entry.Approved != nil {
				approved = *entry.Approved
			}

			user := &model.User{
				Name:         entry.Name,
				Email:        entry.Email,
				PasswordHash: hash,
				Role:         role,
				Approved:     approved,
			}
			if err := users.Save(user); err != nil {
				return err
			}

			if entry.Student != nil && role == model.RoleStudent {
				profile := &model.StudentProfile{
					UserID:     user.ID,
					Department: entry.Student.Department,
					CGPA:       entry.Student.CGPA,
					Resume:     entry.Student.Resume,
				}
				if err := students.Save(profile); err != nil {
					return err
				}
			}

			if entry.Company != nil && role == model.RoleCompany {
				profile := &model.CompanyProfile{
					UserID:      user.ID,
					CompanyName: entry.Company.CompanyName,
					Industry:    entry.Company.Industry,
					Website:     entry.Company.Website,
					Description: entry.Company.Description,
					Location:    entry.Company.Location,
					CompanySize: entry.Company.CompanySize,
				}
				if err := companies.Save(profile); err != nil {
					return err
				}

				for _, j := range entry.Jobs {
					job := &model.Job{
						CompanyID: profile.ID,
						Title:     j.Title,
						Skills:    j.Skills,
						Salary:    j.Salary,
						Approved:  j.Approved,
					}
					if err := jobs.Save(job); err != nil {
						return err
					}
				}
			}
		}

		log.WithField("users", len(seed.Users)).Info("fixtures loaded")
		return nil
	})
}
