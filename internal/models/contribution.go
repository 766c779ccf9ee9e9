package models

import (
	"time"
)

// 贡献分类,与前端筛选下拉选项一一对应
const (
	CategoryStory      = "story"
	CategoryInsight    = "insight"
	CategoryTip        = "tip"
	CategoryQuestion   = "question"
	CategoryDiscussion = "discussion"
	CategoryOther      = "other"
)

type Contribution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *string   `gorm:"size:64;index" json:"userId"`
	Author      *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author,omitempty"`
	AuthorName  string    `json:"authorName"`  // 匿名投稿时的署名,可为空
	AuthorEmail string    `json:"authorEmail"` // Optional
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"` // 富文本 HTML
	Excerpt     string    `gorm:"size:160" json:"excerpt"`           // 创建时派生,之后不再单独修改
	Category    string    `gorm:"size:20;index;not null" json:"category"`
	Likes       int       `gorm:"default:0" json:"likes"` // 只增不减,无去重
	CreatedAt   time.Time `json:"createdAt"`
}
