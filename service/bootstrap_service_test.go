package service

import (
	"os"
	"path/filepath"
	"testing"

	"placement_portal/model"
)

const fixtureYAML = `users:
  - name: Priya Sharma
    email: priya@campus.test
    password: changeme
    role: student
    student_profile:
      department: Computer Science
      cgpa: 8.7
      resume: https://example.com/priya.pdf

  - name: Acme Recruiting
    email: hr@acme.test
    password: changeme
    role: company
    approved: true
    company_profile:
      company_name: Acme Corp
      industry: Software
    jobs:
      - title: Backend Engineer
        skills: Go, SQL
        salary: 12 LPA
        approved: true
      - title: Data Analyst
        skills: Python
        salary: 9 LPA
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtures(t *testing.T) {
	db := newTestDB(t)
	bootstrap := NewBootstrapService(db)
	path := writeFixture(t)

	if err := bootstrap.LoadFixtures(path); err != nil {
		t.Fatalf("load fixtures: %v", err)
	}

	auth := newAuthService(db)
	student, _, err := auth.Login("priya@campus.test", "changeme")
	if err != nil {
		t.Fatalf("fixture student login: %v", err)
	}
	if student.Role != model.RoleStudent {
		t.Errorf("fixture student has role %s", student.Role)
	}

	company, _, err := auth.Login("hr@acme.test", "changeme")
	if err != nil {
		t.Fatalf("fixture company login: %v", err)
	}
	if company.NeedsApproval() {
		t.Error("fixture company declared approved but is gated")
	}

	open, err := newJobService(db).OpenJobs()
	if err != nil {
		t.Fatalf("open jobs: %v", err)
	}
	if len(open) != 1 || open[0].Title != "Backend Engineer" {
		t.Errorf("expected exactly the approved fixture job to be open, got %d", len(open))
	}
}

func TestLoadFixturesIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	bootstrap := NewBootstrapService(db)
	path := writeFixture(t)

	if err := bootstrap.LoadFixtures(path); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := bootstrap.LoadFixtures(path); err != nil {
		t.Fatalf("second load: %v", err)
	}

	var users, jobs int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Job{}).Count(&jobs)
	if users != 2 {
		t.Errorf("%d users after double load, want 2", users)
	}
	if jobs != 2 {
		t.Errorf("%d jobs after double load, want 2", jobs)
	}
}

func TestLoadFixturesMissingFile(t *testing.T) {
	db := newTestDB(t)
	if err := NewBootstrapService(db).LoadFixtures("/nonexistent/seed.yaml"); err == nil {
		t.Error("missing fixture file must error")
	}
}
