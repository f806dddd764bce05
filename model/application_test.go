package model

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "student", "company"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Admin", "teacher", "superadmin"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Errorf("ParseRole(%q) accepted an invalid role", invalid)
		}
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, valid := range []string{"Applied", "Shortlisted", "Rejected", "Hired"} {
		if _, err := ParseApplicationStatus(valid); err != nil {
			t.Errorf("ParseApplicationStatus(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseApplicationStatus("applied"); err == nil {
		t.Error("status parsing must be case-sensitive against the enum")
	}
	if _, err := ParseApplicationStatus("Pending"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusApplied, StatusShortlisted, true},
		{StatusApplied, StatusRejected, true},
		{StatusApplied, StatusHired, false},
		{StatusShortlisted, StatusHired, true},
		{StatusShortlisted, StatusRejected, true},
		{StatusShortlisted, StatusApplied, false},
		{StatusRejected, StatusShortlisted, false},
		{StatusHired, StatusRejected, false},
		{StatusApplied, StatusApplied, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestJobOpen(t *testing.T) {
	tests := []struct {
		approved, closed bool
		want             bool
	}{
		{false, false, false},
		{true, false, true},
		{true, true, false},
		{false, true, false},
	}
	for _, tt := range tests {
		job := Job{Approved: tt.approved, Closed: tt.closed}
		if got := job.Open(); got != tt.want {
			t.Errorf("Job{Approved:%v, Closed:%v}.Open() = %v, want %v",
				tt.approved, tt.closed, got, tt.want)
		}
	}
}

func TestNeedsApproval(t *testing.T) {
	company := User{Role: RoleCompany, Approved: false}
	if !company.NeedsApproval() {
		t.Error("unapproved company should need approval")
	}
	company.Approved = true
	if company.NeedsApproval() {
		t.Error("approved company should not need approval")
	}
	student := User{Role: RoleStudent, Approved: true}
	if student.NeedsApproval() {
		t.Error("students never need approval")
	}
	admin := User{Role: RoleAdmin}
	if admin.NeedsApproval() {
		t.Error("admins never need approval")
	}
}
