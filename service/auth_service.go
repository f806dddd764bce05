package service

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"placement_portal/model"
	"placement_portal/repository"
	"placement_portal/utils"
)

// AuthService owns registration, credential verification and the
// server-side session lifecycle.
type AuthService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		db:          db,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// Register creates a student or company account. Admin self-registration is
// rejected. Students are approved immediately; companies wait for an admin.
func (s *AuthService) Register(name, email, password, roleValue string) (*model.User, error) {
	role, err := model.ParseRole(roleValue)
	if err != nil {
		return nil, ErrInvalidRole
	}
	if role == model.RoleAdmin {
		return nil, ErrAdminRegistration
	}

	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Approved:     role != model.RoleCompany,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		existing, err := users.FindByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		return users.Save(user)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("registered new account")
	return user, nil
}

// Login verifies credentials and opens a session. Missing user and wrong
// password collapse into the same error so the response leaks neither.
// Approval gating is NOT applied here; an unapproved company logs in fine
// and is turned away at the gated views.
func (s *AuthService) Login(email, password string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	session := &model.Session{
		UserID:    user.ID,
		Token:     utils.NewSessionToken(),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, nil, err
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("login")
	return user, session, nil
}

// Authenticate resolves a cookie token to its user. Expired sessions are
// removed on sight.
func (s *AuthService) Authenticate(token string) (*model.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	if session.Expired(time.Now()) {
		if err := s.sessionRepo.DeleteByToken(token); err != nil {
			log.WithError(err).Warn("failed to delete expired session")
		}
		return nil, ErrNoSession
	}

	user, err := s.userRepo.FindByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// Logout discards the session row. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(token)
}

// SweepExpiredSessions clears stale rows, typically once at startup.
func (s *AuthService) SweepExpiredSessions() (int64, error) {
	return s.sessionRepo.DeleteExpired(time.Now())
}
