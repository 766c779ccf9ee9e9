package services

import (
	"ceili/internal/db"
	"ceili/internal/models"
	"ceili/internal/utils"

	"gorm.io/gorm"
)

// CreateContributionInput 由 API 层组装
// UserID 只能来自会话解析结果,绝不信任请求体里的用户标识
type CreateContributionInput struct {
	Title       string
	Content     string
	Category    string
	AuthorName  string
	AuthorEmail string
	UserID      *string
}

type ContributionService struct{}

func NewContributionService() *ContributionService {
	return &ContributionService{}
}

// Create 派生摘要、清洗富文本并入库,返回完整落库记录
// 摘要始终从原始提交内容派生:清洗会把正文里的尖括号转义,
// 先清洗再剔除标签会改变摘要,朴素剔除规则必须作用在原文上
func (s *ContributionService) Create(input CreateContributionInput) (*models.Contribution, error) {
	excerpt := utils.MakeExcerpt(input.Content)

	contribution := models.Contribution{
		UserID:      input.UserID,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Title:       input.Title,
		Content:     utils.SanitizeUGC(input.Content),
		Excerpt:     excerpt,
		Category:    input.Category,
	}

	if err := db.DB.Create(&contribution).Error; err != nil {
		return nil, err
	}
	return &contribution, nil
}

// List 返回全部贡献,关联作者(左连接,匿名或作者缺失时为 nil),按创建时间倒序
func (s *ContributionService) List() ([]models.Contribution, error) {
	var contributions []models.Contribution
	err := db.DB.Preload("Author").
		Order("created_at DESC").
		Find(&contributions).Error
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

// GetByID 按 id 查询单条贡献,未命中返回 gorm.ErrRecordNotFound
func (s *ContributionService) GetByID(id int) (*models.Contribution, error) {
	var contribution models.Contribution
	err := db.DB.Preload("Author").First(&contribution, id).Error
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// Like 把计数加一
// 用数据库侧的增量表达式,避免两次往返的读改写在并发点赞时丢失更新
func (s *ContributionService) Like(id int) error {
	result := db.DB.Model(&models.Contribution{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
