package repository

import (
	"errors"
	"time"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// CreatePointTransaction 写入一条积分流水
func (r *Repository) CreatePointTransaction(db *gorm.DB, tx *model.PointTransaction) error {
	return db.Create(tx).Error
}

// GetPointTransactionByKey 根据幂等键查询积分流水
func (r *Repository) GetPointTransactionByKey(db *gorm.DB, idempotencyKey string) (*model.PointTransaction, error) {
	var tx model.PointTransaction
	err := db.Where("idempotency_key = ?", idempotencyKey).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

// ListPointTransactions 分页查询志愿者积分流水
func (r *Repository) ListPointTransactions(db *gorm.DB, volunteerID int64, txType int32, offset, limit int) ([]model.PointTransaction, int64, error) {
	query := db.Model(&model.PointTransaction{}).Where("volunteer_id = ?", volunteerID)
	if txType > 0 {
		query = query.Where("tx_type = ?", txType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []model.PointTransaction
	err := query.Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error
	return txs, total, err
}

// WindowPoints 志愿者窗口期内获得的积分
type WindowPoints struct {
	VolunteerID int64
	Points      int64
}

// SumEarnedPointsSince 按志愿者聚合窗口起点之后的获得积分，降序取前N名
func (r *Repository) SumEarnedPointsSince(db *gorm.DB, since time.Time, limit int) ([]WindowPoints, error) {
	var rows []WindowPoints
	err := db.Model(&model.PointTransaction{}).
		Select("volunteer_id, SUM(amount) AS points").
		Where("tx_type = ? AND created_at >= ?", model.PointTxEarn, since).
		Group("volunteer_id").
		Order("points DESC, volunteer_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
