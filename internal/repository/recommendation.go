package repository

import (
	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// CreateRecommendation 写入一条匹配推荐记录（创建后不可变）
func (r *Repository) CreateRecommendation(db *gorm.DB, rec *model.MatchRecommendation) error {
	return db.Create(rec).Error
}

// ListRecommendationsByTask 查询任务的历史匹配记录，新的在前
func (r *Repository) ListRecommendationsByTask(db *gorm.DB, taskID int64, limit int) ([]model.MatchRecommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	var recs []model.MatchRecommendation
	err := db.Where("task_id = ?", taskID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
