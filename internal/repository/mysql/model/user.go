package model

import "github.com/lostblog/blog-backend/domain"

type User struct {
	ID        int64  `gorm:"primaryKey"`
	Username  string `gorm:"column:username"`
	AvatarURL string `gorm:"column:avatar_url"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		AvatarURL: m.AvatarURL,
	}
}
