package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"ceili/internal/db"
	"ceili/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm/clause"
)

var googleOauthConfig *oauth2.Config

// InitGoogleOAuth 初始化 Google OAuth 配置
func InitGoogleOAuth() {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	googleOauthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  siteURL + "/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GoogleUserInfo Google 用户信息结构
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	Picture       string `json:"picture"`
}

// generateStateToken 生成随机 state token
func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GoogleLogin 发起 Google OAuth 登录
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := generateStateToken()
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to start login")
		return
	}

	// 将 state 存储到 session 中,用于验证回调
	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	url := googleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback 处理 Google OAuth 回调
// 每次成功回调都会 upsert 用户档案,再把 user_id 写入会话
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")

	// 验证 state 参数
	if savedState == nil || c.Query("state") != savedState.(string) {
		JSONError(c, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	// 清除 state
	session.Delete("oauth_state")
	session.Save()

	code := c.Query("code")
	if code == "" {
		JSONError(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	// 交换 token
	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to exchange token")
		return
	}

	// 获取用户信息
	userInfo, err := h.getGoogleUserInfo(token.AccessToken)
	if err != nil {
		log.Printf("Fetching Google user info failed: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to fetch user info")
		return
	}

	if !userInfo.VerifiedEmail {
		JSONError(c, http.StatusBadRequest, "Google email not verified")
		return
	}

	user := models.User{
		ID:              userInfo.ID,
		Email:           userInfo.Email,
		FirstName:       userInfo.GivenName,
		ProfileImageURL: userInfo.Picture,
	}
	err = db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "profile_image_url", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		log.Printf("Upserting user %s failed: %v", userInfo.ID, err)
		JSONError(c, http.StatusInternalServerError, "Failed to save user")
		return
	}

	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// getGoogleUserInfo 用 access token 拉取 Google 用户信息
func (h *AuthHandler) getGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo request failed: %s", string(body))
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}
	return &userInfo, nil
}

// GetUser 返回当前会话对应的用户档案
func (h *AuthHandler) GetUser(c *gin.Context) {
	// AuthRequired 已拦截无会话的请求;会话存在但用户行加载失败按内部错误处理
	user := CurrentUser(c)
	if user == nil {
		JSONError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout 退出登录
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
