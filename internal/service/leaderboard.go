package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"volunteer-platform/config"
	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	defaultLeaderboardTTL   = 60 * time.Second
)

type LeaderboardService struct {
	Service
}

func NewLeaderboardService(ctx context.Context, c *app.RequestContext) *LeaderboardService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LeaderboardService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// Leaderboard 查询排行榜
// all窗口按生涯总积分排序（平分比信誉）；时间窗口按窗口内EARN流水合计排序，
// 并单独携带生涯总积分——两者刻意不混排
func (s *LeaderboardService) Leaderboard(req *api.LeaderboardRequest) (*api.LeaderboardResponse, error) {
	window := req.Window
	if window == "" {
		window = "all"
	}
	start, windowed, err := windowStart(window, time.Now())
	if err != nil {
		return nil, err
	}

	limit := normalizeLeaderboardLimit(req.Limit)

	// Redis缓存：排行榜读多写少，短TTL换DB压力
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", window, limit)
	if cached := s.readCache(cacheKey); cached != nil {
		return cached, nil
	}

	var resp *api.LeaderboardResponse
	if windowed {
		resp, err = s.windowedLeaderboard(window, start, limit)
	} else {
		resp, err = s.allTimeLeaderboard(limit)
	}
	if err != nil {
		return nil, err
	}

	s.writeCache(cacheKey, resp)
	return resp, nil
}

// allTimeLeaderboard 生涯总积分排行
func (s *LeaderboardService) allTimeLeaderboard(limit int) (*api.LeaderboardResponse, error) {
	volunteers, err := s.repo.ListTopVolunteers(s.repo.DB, limit)
	if err != nil {
		log.Error("排行榜 - 查询总积分排名失败: %v", err)
		return nil, err
	}

	entries := make([]api.LeaderboardEntry, 0, len(volunteers))
	for i, v := range volunteers {
		entries = append(entries, api.LeaderboardEntry{
			Rank:        i + 1,
			VolunteerID: v.ID,
			RealName:    v.RealName,
			Points:      v.TotalPoints,
			TotalPoints: v.TotalPoints,
			Level:       v.Level,
			Reputation:  v.Reputation,
		})
	}
	return &api.LeaderboardResponse{Window: "all", Entries: entries}, nil
}

// windowedLeaderboard 窗口期获得积分排行
func (s *LeaderboardService) windowedLeaderboard(window string, start time.Time, limit int) (*api.LeaderboardResponse, error) {
	rows, err := s.repo.SumEarnedPointsSince(s.repo.DB, start, limit)
	if err != nil {
		log.Error("排行榜 - 窗口积分聚合失败: %v, window=%s", err, window)
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.VolunteerID)
	}
	volunteers, err := s.repo.ListVolunteersByIDs(s.repo.DB, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Volunteer, len(volunteers))
	for i := range volunteers {
		byID[volunteers[i].ID] = &volunteers[i]
	}

	entries := make([]api.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := api.LeaderboardEntry{
			Rank:        i + 1,
			VolunteerID: row.VolunteerID,
			Points:      row.Points,
		}
		if v := byID[row.VolunteerID]; v != nil {
			entry.RealName = v.RealName
			entry.TotalPoints = v.TotalPoints
			entry.Level = v.Level
			entry.Reputation = v.Reputation
		}
		entries = append(entries, entry)
	}
	return &api.LeaderboardResponse{Window: window, Entries: entries}, nil
}

// windowStart 解析窗口起点，all窗口返回windowed=false
func windowStart(window string, now time.Time) (time.Time, bool, error) {
	switch window {
	case "all":
		return time.Time{}, false, nil
	case "weekly":
		return now.AddDate(0, 0, -7), true, nil
	case "monthly":
		return now.AddDate(0, -1, 0), true, nil
	case "yearly":
		return now.AddDate(-1, 0, 0), true, nil
	default:
		return time.Time{}, false, response.ErrInvalidParams.WithDetails("window must be one of all/weekly/monthly/yearly")
	}
}

func normalizeLeaderboardLimit(limit int) int {
	def, max := defaultLeaderboardLimit, maxLeaderboardLimit
	cfg := config.GetConfig()
	if cfg != nil && cfg.Leaderboard != nil {
		if cfg.Leaderboard.DefaultLimit > 0 {
			def = cfg.Leaderboard.DefaultLimit
		}
		if cfg.Leaderboard.MaxLimit > 0 {
			max = cfg.Leaderboard.MaxLimit
		}
	}
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func leaderboardTTL() time.Duration {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Leaderboard != nil && cfg.Leaderboard.CacheTTLSeconds > 0 {
		return time.Duration(cfg.Leaderboard.CacheTTLSeconds) * time.Second
	}
	return defaultLeaderboardTTL
}

// readCache 读取排行榜缓存，任何失败按未命中处理
func (s *LeaderboardService) readCache(key string) *api.LeaderboardResponse {
	rdb := s.repo.GetRedisCmd()
	if rdb == nil {
		return nil
	}

	data, err := rdb.Get(s.ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var resp api.LeaderboardResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

// writeCache 写入排行榜缓存，失败只记录日志
func (s *LeaderboardService) writeCache(key string, resp *api.LeaderboardResponse) {
	rdb := s.repo.GetRedisCmd()
	if rdb == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := rdb.Set(s.ctx, key, data, leaderboardTTL()).Err(); err != nil {
		log.Warn("排行榜缓存写入失败: %v, key=%s", err, key)
	}
}
