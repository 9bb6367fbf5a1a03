package match

import (
	"math"

	"volunteer-platform/pkg/geo"
)

// 各评分因子权重，总和固定为100，保证综合得分落在 [0,100]
const (
	weightSkill      = 40.0
	weightDistance   = 20.0
	weightWorkload   = 15.0
	weightReputation = 15.0
	weightPoints     = 10.0
)

// TaskInput 参与匹配评分的任务侧输入
type TaskInput struct {
	RequiredSkills []string
	Latitude       *float64
	Longitude      *float64
}

// Candidate 参与匹配评分的志愿者候选人快照（每次匹配重新计算，不落库）
type Candidate struct {
	VolunteerID int64
	Skills      []string
	Latitude    *float64
	Longitude   *float64
	Reputation  float64 // 0-100
	TotalPoints int64
	Workload    int // 当前活跃指派数量
}

// Breakdown 单项评分明细，保留两位小数，用于审计与测试
type Breakdown struct {
	SkillScore      float64  `json:"skill_score"`
	DistanceScore   float64  `json:"distance_score"`
	WorkloadScore   float64  `json:"workload_score"`
	ReputationScore float64  `json:"reputation_score"`
	PointsScore     float64  `json:"points_score"`
	DistanceKm      *float64 `json:"distance_km"`
	Workload        int      `json:"workload"`
}

// Score 计算任务与候选人之间的启发式匹配得分，结果为 [0,100] 的整数
func Score(task TaskInput, cand Candidate) (int, Breakdown) {
	skillScore := calcSkillScore(task.RequiredSkills, cand.Skills)
	distanceKm := geo.DistanceKm(task.Latitude, task.Longitude, cand.Latitude, cand.Longitude)
	distanceScore := calcDistanceScore(distanceKm)
	workloadScore := calcWorkloadScore(cand.Workload)
	reputationScore := math.Min(cand.Reputation/100, 1)
	pointsScore := math.Min(float64(cand.TotalPoints)/1000, 1)

	total := skillScore*weightSkill +
		distanceScore*weightDistance +
		workloadScore*weightWorkload +
		reputationScore*weightReputation +
		pointsScore*weightPoints

	breakdown := Breakdown{
		SkillScore:      round2(skillScore),
		DistanceScore:   round2(distanceScore),
		WorkloadScore:   round2(workloadScore),
		ReputationScore: round2(reputationScore),
		PointsScore:     round2(pointsScore),
		DistanceKm:      distanceKm,
		Workload:        cand.Workload,
	}

	return int(math.Round(total)), breakdown
}

// calcSkillScore 技能匹配度 = 命中技能数 / 要求技能数
// 任务未声明技能要求时按0.6处理：无法评估匹配度，给中性偏乐观的默认值，
// 但不因候选人技能多而加分
func calcSkillScore(required, owned []string) float64 {
	if len(required) == 0 {
		return 0.6
	}

	ownedSet := make(map[string]struct{}, len(owned))
	for _, s := range owned {
		ownedSet[s] = struct{}{}
	}

	matched := 0
	for _, s := range required {
		if _, ok := ownedSet[s]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(required))
}

// calcDistanceScore 距离分档打分，任一方位置未知时给0.5（未知不作惩罚）
// 分档边界为左闭右开：5公里整落在 <20 档
func calcDistanceScore(distanceKm *float64) float64 {
	if distanceKm == nil {
		return 0.5
	}

	d := *distanceKm
	switch {
	case d < 5:
		return 1.0
	case d < 20:
		return 0.8
	case d < 50:
		return 0.6
	case d < 100:
		return 0.4
	default:
		return 0.2
	}
}

// calcWorkloadScore 工作量打分：3个及以上活跃指派视为过载
func calcWorkloadScore(workload int) float64 {
	switch {
	case workload >= 3:
		return 0.2
	case workload == 2:
		return 0.5
	default:
		return 1.0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
