package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"placement_portal/model"
)

// SessionRepository is the server-side session store.
type SessionRepository interface {
	FindByToken(token string) (*model.Session, error)
	Save(session *model.Session) error
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) FindByToken(token string) (*model.Session, error) {
	var session model.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) Save(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&model.Session{}).Error
}

// DeleteExpired removes stale rows and returns how many were swept.
func (r *sessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
