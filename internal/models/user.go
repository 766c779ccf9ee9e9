package models

import (
	"time"
)

// User 第三方 OAuth 登录后保存的用户档案
// ID 是提供方签发的 subject,本系统不自行生成,也不删除用户
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"index" json:"email"`
	FirstName       string    `json:"firstName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
