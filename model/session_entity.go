package model

import "time"

// Session binds an opaque cookie token to an authenticated user. Rows are
// the authoritative session store; the cookie only carries the token.
type Session struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    int64     `gorm:"column:user_id;index;not null"`
	User      User      `gorm:"foreignKey:UserID"`
	Token     string    `gorm:"column:token;size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
