package model

import "time"

// Job belongs to exactly one CompanyProfile.
//
// Lifecycle: created as a draft (Approved=false), made visible to students
// by an admin (Approved=true), closed by the owning company when filled
// (Closed=true, terminal). Applications are only accepted while the job is
// approved and not closed.
type Job struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	CompanyID int64          `gorm:"column:company_id;index;not null"`
	Company   CompanyProfile `gorm:"foreignKey:CompanyID"`
	Title     string         `gorm:"column:title;size:150;not null"`
	Skills    string         `gorm:"column:skills;size:200"`
	Salary    string         `gorm:"column:salary;size:50"`
	Approved  bool           `gorm:"column:is_approved"`
	Closed    bool           `gorm:"column:is_closed"`
	CreatedAt time.Time      `gorm:"column:created_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// Open reports whether the job currently accepts applications.
func (j *Job) Open() bool {
	return j.Approved && !j.Closed
}
