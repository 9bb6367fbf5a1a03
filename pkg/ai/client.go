package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"volunteer-platform/pkg/match"
)

// Config AI推荐服务配置
type Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// Client Gemini风格的推荐服务客户端
// 调用方约定：任何失败（未配置、超时、响应异常）都返回 error，
// 由匹配服务降级为纯启发式排名，本层不做重试
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// TaskSummary 提交给AI的任务摘要
type TaskSummary struct {
	TaskID         int64    `json:"task_id"`
	Title          string   `json:"title"`
	Urgency        int32    `json:"urgency"`
	RequiredSkills []string `json:"required_skills"`
}

// CandidateSummary 提交给AI的候选人摘要
type CandidateSummary struct {
	VolunteerID    int64    `json:"volunteer_id"`
	Skills         []string `json:"skills"`
	Reputation     float64  `json:"reputation"`
	TotalPoints    int64    `json:"total_points"`
	Workload       int      `json:"workload"`
	HeuristicScore int      `json:"heuristic_score"`
}

// NewClient 创建AI客户端
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// generateContent 请求/响应体（Gemini REST 格式）
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// RequestRecommendations 请求AI对候选人重新排序
// 返回的 error 仅用于记录日志，调用方一律按"AI未响应"降级处理
func (c *Client) RequestRecommendations(ctx context.Context, task TaskSummary, candidates []CandidateSummary) (*match.AIResponse, error) {
	if !c.cfg.Enabled || c.cfg.BaseURL == "" || c.cfg.APIKey == "" {
		return nil, errors.New("AI推荐服务未配置")
	}
	if len(candidates) == 0 {
		return nil, errors.New("候选人列表为空")
	}

	prompt, err := buildPrompt(task, candidates)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI服务返回异常状态码: %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, err
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("AI响应内容为空")
	}

	return parseRecommendations(genResp.Candidates[0].Content.Parts[0].Text)
}

// buildPrompt 构造提示词，要求AI仅输出JSON
func buildPrompt(task TaskSummary, candidates []CandidateSummary) (string, error) {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return "", err
	}
	candJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("你是志愿者匹配助手。根据任务与候选人信息，对候选人给出0-100的推荐分与理由。\n")
	b.WriteString("任务: ")
	b.Write(taskJSON)
	b.WriteString("\n候选人: ")
	b.Write(candJSON)
	b.WriteString("\n只输出JSON，格式: {\"recommendations\":[{\"volunteer_id\":0,\"score\":0,\"justification\":\"\",\"priority\":0}]}")
	return b.String(), nil
}

// parseRecommendations 从AI输出文本中解析推荐JSON，容忍markdown代码块包裹
func parseRecommendations(text string) (*match.AIResponse, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var out match.AIResponse
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("AI响应解析失败: %w", err)
	}
	if len(out.Recommendations) == 0 {
		return nil, errors.New("AI响应不含推荐结果")
	}
	return &out, nil
}
