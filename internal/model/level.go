package model

import "math"

// 等级称号，与志愿者档案 level 字段的取值一致
const (
	LevelBronce  = "BRONCE"
	LevelPlata   = "PLATA"
	LevelOro     = "ORO"
	LevelPlatino = "PLATINO"
)

// levelThresholds 等级积分阈值表，按阈值升序排列，边界取值含本数
var levelThresholds = []struct {
	MinPoints int64
	Level     string
}{
	{0, LevelBronce},
	{1000, LevelPlata},
	{2500, LevelOro},
	{5000, LevelPlatino},
}

// LevelForPoints 根据累计积分返回等级：取阈值不超过积分的最高档
func LevelForPoints(points int64) string {
	level := levelThresholds[0].Level
	for _, t := range levelThresholds {
		if points >= t.MinPoints {
			level = t.Level
		}
	}
	return level
}

// NextReputation 计算核验后的新信誉分：指数滑动平均，偏向最新评分
// rating*4 将 1-5 星映射到 4-20 的贡献区间，结果封顶100
func NextReputation(current float64, rating int32) float64 {
	next := math.Round(current*0.8 + float64(rating)*4)
	return math.Min(100, next)
}
