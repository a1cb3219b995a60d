package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"go-board-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create 依赖 username 唯一索引，冲突由数据库报出（不做先查后插）
func (r *UserRepo) Create(u *domain.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *UserRepo) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return &u, nil
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动/版本差异
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
