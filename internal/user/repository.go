package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByUsernameAndPassword(ctx context.Context, username, password string) (*User, error)
	FindAllStudents(ctx context.Context) ([]*User, error)
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) FindAll(ctx context.Context) ([]*User, error) {
	users := []*User{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepository) FindByUsernameAndPassword(ctx context.Context, username, password string) (*User, error) {
	return r.first(ctx, "username = ? AND password = ?", username, password)
}

func (r *userRepository) FindAllStudents(ctx context.Context) ([]*User, error) {
	users := []*User{}
	if err := r.db.WithContext(ctx).
		Where("is_teacher = ?", false).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&User{}).Error
}

func (r *userRepository) first(ctx context.Context, query string, args ...interface{}) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id ASC").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
