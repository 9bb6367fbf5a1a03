package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config 徽章上链（模拟区块链注册）服务配置
type Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// Client 上链服务客户端
// 调用方约定：失败返回 error，由调用方把授予记录标记为FAILED，不中断主流程
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// MintRequest 上链请求
type MintRequest struct {
	RequestID string            `json:"request_id"` // 幂等键
	BadgeCode string            `json:"badge_code"`
	Recipient string            `json:"recipient"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// MintResult 上链结果
type MintResult struct {
	TokenID string `json:"token_id"`
	TxHash  string `json:"tx_hash"`
}

// NewClient 创建上链客户端
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Mint 请求上链注册一枚徽章
func (c *Client) Mint(ctx context.Context, req MintRequest) (*MintResult, error) {
	if !c.cfg.Enabled || c.cfg.BaseURL == "" {
		return nil, errors.New("上链服务未配置")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/mint"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("上链服务返回异常状态码: %d", resp.StatusCode)
	}

	var result MintResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.TokenID == "" {
		return nil, errors.New("上链服务未返回token_id")
	}
	return &result, nil
}
