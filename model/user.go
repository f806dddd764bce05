package model

import (
	"time"
)

// User is the root account entity. StudentProfile and CompanyProfile are
// 1:1 extensions keyed by UserID; which one exists depends on Role.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name         string    `gorm:"column:name;size:100;not null"`
	Email        string    `gorm:"column:email;size:120;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:200;not null"`
	Role         Role      `gorm:"column:role;size:20;not null"`
	Approved     bool      `gorm:"column:is_approved"` // only meaningful for company accounts
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

// NeedsApproval reports whether gated company views are still closed to
// this account. Admins and students never wait for approval.
func (u *User) NeedsApproval() bool {
	return u.Role == RoleCompany && !u.Approved
}
