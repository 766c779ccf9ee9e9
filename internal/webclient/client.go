package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ceili/internal/models"
	"ceili/internal/utils"
)

const contributionsPath = "/api/contributions"

// 请求缓存的保鲜期;写操作会显式失效,这里只兜底
const requestCacheTTL = 5 * time.Minute

// APIError 服务端返回的非 2xx 响应
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client 贡献 API 的数据获取层
// 读请求按端点路径键控缓存,命中即不回源;每次成功的写操作都会
// 使列表缓存失效,迫使下一次读取重新拉取
// 一个进程只应构建一个 Client,其缓存即进程级请求缓存
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *utils.Cache
}

// New 创建指向 baseURL 的客户端
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      utils.NewCache(64),
	}
}

// ContributionInput 投稿表单数据;用户身份由服务端会话决定,这里不带
type ContributionInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	AuthorName  string `json:"authorName,omitempty"`
	AuthorEmail string `json:"authorEmail,omitempty"`
}

// Contributions 返回贡献列表,缓存命中时不发起请求
func (c *Client) Contributions(ctx context.Context) ([]models.Contribution, error) {
	if cached := c.cache.Get(contributionsPath); cached != nil {
		if contributions, ok := cached.([]models.Contribution); ok {
			return contributions, nil
		}
	}

	var contributions []models.Contribution
	if err := c.getJSON(ctx, contributionsPath, &contributions); err != nil {
		return nil, err
	}

	c.cache.Set(contributionsPath, contributions, requestCacheTTL)
	return contributions, nil
}

// Contribution 拉取单条贡献详情,不走缓存
func (c *Client) Contribution(ctx context.Context, id int) (*models.Contribution, error) {
	var contribution models.Contribution
	path := fmt.Sprintf("%s/%d", contributionsPath, id)
	if err := c.getJSON(ctx, path, &contribution); err != nil {
		return nil, err
	}
	return &contribution, nil
}

// CurrentUser 拉取当前登录用户,未登录时返回 401 的 APIError
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/api/auth/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateContribution 提交投稿,成功后使列表缓存失效
func (c *Client) CreateContribution(ctx context.Context, input ContributionInput) (*models.Contribution, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contributionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var contribution models.Contribution
	if err := json.NewDecoder(resp.Body).Decode(&contribution); err != nil {
		return nil, err
	}

	c.cache.Delete(contributionsPath)
	return &contribution, nil
}

// LikeContribution 点赞,成功后使列表缓存失效
// 不做乐观更新,新计数以下一次重新拉取为准
func (c *Client) LikeContribution(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d/like", contributionsPath, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	c.cache.Delete(contributionsPath)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	// 响应体解析失败也要带上状态码返回
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}
