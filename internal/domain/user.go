package domain

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	// FindByUsername 未命中返回 (nil, nil)，是否视为错误由调用方决定
	FindByUsername(username string) (*User, error)
}
