package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"ceili/internal/models"
	"ceili/internal/services"
	"ceili/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// 列表接口的服务端缓存键,创建/点赞后删除,保证写后读立即可见
const listCacheKey = "contributions:list"

const listCacheTTL = 1 * time.Minute

type ContributionHandler struct {
	service *services.ContributionService
}

func NewContributionHandler() *ContributionHandler {
	return &ContributionHandler{
		service: services.NewContributionService(),
	}
}

// contributionForm 投稿请求体
// 不收 userId:登录用户的身份一律由服务端从会话补全
type contributionForm struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=story insight tip question discussion other"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
}

// Create 提交贡献,允许匿名
func (h *ContributionHandler) Create(c *gin.Context) {
	var form contributionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  fieldErrors(verrs),
			})
			return
		}
		JSONError(c, http.StatusBadRequest, "Validation error")
		return
	}

	input := services.CreateContributionInput{
		Title:       form.Title,
		Content:     form.Content,
		Category:    form.Category,
		AuthorName:  form.AuthorName,
		AuthorEmail: form.AuthorEmail,
	}
	if user := CurrentUser(c); user != nil {
		input.UserID = &user.ID
	}

	contribution, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating contribution: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to create contribution")
		return
	}

	utils.GetCache().Delete(listCacheKey)
	c.JSON(http.StatusCreated, contribution)
}

// List 返回全部贡献(含作者),短 TTL 缓存 + 写后失效
func (h *ContributionHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(listCacheKey); cached != nil {
		if contributions, ok := cached.([]models.Contribution); ok {
			c.JSON(http.StatusOK, contributions)
			return
		}
	}

	contributions, err := h.service.List()
	if err != nil {
		log.Printf("Error fetching contributions: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to fetch contributions")
		return
	}

	utils.GetCache().Set(listCacheKey, contributions, listCacheTTL)
	c.JSON(http.StatusOK, contributions)
}

// Detail 贡献详情
func (h *ContributionHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid contribution ID")
		return
	}

	contribution, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "Contribution not found")
			return
		}
		log.Printf("Error fetching contribution %d: %v", id, err)
		JSONError(c, http.StatusInternalServerError, "Failed to fetch contribution")
		return
	}

	c.JSON(http.StatusOK, contribution)
}

// Like 点赞,无需登录也不去重
func (h *ContributionHandler) Like(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid contribution ID")
		return
	}

	if err := h.service.Like(id); err != nil {
		// 对不存在的 id 仍按成功处理,维持既有对外行为
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error liking contribution %d: %v", id, err)
			JSONError(c, http.StatusInternalServerError, "Failed to like contribution")
			return
		}
	}

	utils.GetCache().Delete(listCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Contribution liked successfully"})
}
