package match

import (
	"math"
	"sort"
)

// AI融合权重：启发式得分0.6 + AI得分0.4
const (
	heuristicWeight = 0.6
	aiWeight        = 0.4
)

// Ranked 排名结果中的一条候选记录
type Ranked struct {
	VolunteerID     int64     `json:"volunteer_id"`
	Score           int       `json:"score"`
	Breakdown       Breakdown `json:"breakdown"`
	AIScore         *int      `json:"ai_score,omitempty"`
	AIJustification string    `json:"ai_justification,omitempty"`
	AIPriority      *int      `json:"ai_priority,omitempty"`
}

// AIRecommendation 外部AI服务返回的单条推荐
type AIRecommendation struct {
	VolunteerID   int64  `json:"volunteer_id"`
	Score         int    `json:"score"`
	Justification string `json:"justification"`
	Priority      int    `json:"priority"`
}

// AIResponse 外部AI服务返回的推荐集合
type AIResponse struct {
	Recommendations []AIRecommendation `json:"recommendations"`
}

// Blend 将启发式排名与AI推荐按权重融合
// AI响应缺失或为空时原样返回启发式排名（AI只是增强，不是硬依赖）；
// 融合后按得分降序重排，相同得分保持原有相对顺序（sort.SliceStable）
func Blend(heuristic []Ranked, ai *AIResponse) []Ranked {
	if ai == nil || len(ai.Recommendations) == 0 {
		return heuristic
	}

	aiByVolunteer := make(map[int64]AIRecommendation, len(ai.Recommendations))
	for _, rec := range ai.Recommendations {
		aiByVolunteer[rec.VolunteerID] = rec
	}

	blended := make([]Ranked, len(heuristic))
	copy(blended, heuristic)

	for i := range blended {
		rec, ok := aiByVolunteer[blended[i].VolunteerID]
		if !ok {
			continue
		}
		aiScore := rec.Score
		priority := rec.Priority
		blended[i].Score = int(math.Round(float64(blended[i].Score)*heuristicWeight + float64(aiScore)*aiWeight))
		blended[i].AIScore = &aiScore
		blended[i].AIJustification = rec.Justification
		blended[i].AIPriority = &priority
	}

	sort.SliceStable(blended, func(a, b int) bool {
		return blended[a].Score > blended[b].Score
	})

	return blended
}
