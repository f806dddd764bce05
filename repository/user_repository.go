package repository

import (
	"errors"

	"gorm.io/gorm"

	"placement_portal/model"
)

// UserRepository is the account store.
type UserRepository interface {
	FindByID(id int64) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByRole(role model.Role) ([]*model.User, error)
	FindPendingCompanies() ([]*model.User, error)
	Save(user *model.User) error
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) FindByRole(role model.Role) ([]*model.User, error) {
	var users []*model.User
	err := r.db.Where("role = ?", role).Order("created_at").Find(&users).Error
	return users, err
}

// FindPendingCompanies returns company accounts still waiting for admin
// approval, oldest first.
func (r *userRepository) FindPendingCompanies() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Where("role = ? AND is_approved = ?", model.RoleCompany, false).
		Order("created_at").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Save(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}
