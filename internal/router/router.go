package router

import (
	"ceili/internal/handlers"
	"ceili/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	contributionHandler := handlers.NewContributionHandler()

	// OAuth 登录 (Google OAuth Routes)
	r.GET("/auth/google/login", authHandler.GoogleLogin)       // 跳转 Google 授权页
	r.GET("/auth/google/callback", authHandler.GoogleCallback) // 授权回调,upsert 用户并写入会话
	r.GET("/logout", authHandler.Logout)                       // 退出登录

	// 公共路由 (Public Routes)
	api := r.Group("/api")
	{
		api.GET("/contributions", contributionHandler.List)           // 贡献列表(含作者)
		api.GET("/contributions/:id", contributionHandler.Detail)     // 贡献详情
		api.POST("/contributions", contributionHandler.Create)        // 提交贡献,允许匿名
		api.POST("/contributions/:id/like", contributionHandler.Like) // 点赞
	}

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/api/auth")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/user", authHandler.GetUser) // 当前登录用户
	}
}
