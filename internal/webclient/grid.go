package webclient

import (
	"sort"

	"ceili/internal/models"
)

// SortPolicy 贡献墙的排序策略
type SortPolicy string

const (
	SortNewest  SortPolicy = "newest"  // 默认,创建时间倒序
	SortOldest  SortPolicy = "oldest"  // 创建时间正序
	SortPopular SortPolicy = "popular" // 点赞数倒序
)

// Grid 计算贡献墙每次渲染展示的集合:
// 先按可选的分类做等值过滤,再按策略排序
// 排序全在客户端完成,服务端的时间倒序只是重排的起点
// 比较键相等的元素之间不保证相对顺序
func Grid(contributions []models.Contribution, category string, policy SortPolicy) []models.Contribution {
	filtered := make([]models.Contribution, 0, len(contributions))
	for _, contribution := range contributions {
		if category == "" || contribution.Category == category {
			filtered = append(filtered, contribution)
		}
	}

	switch policy {
	case SortOldest:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortPopular:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Likes > filtered[j].Likes
		})
	default: // SortNewest
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}
