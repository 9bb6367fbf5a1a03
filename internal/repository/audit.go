package repository

import (
	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// CreateAuditRecord 写入一条审计记录
func (r *Repository) CreateAuditRecord(db *gorm.DB, record *model.AuditRecord) error {
	return db.Create(record).Error
}

// ListAuditRecords 分页查询审计记录
func (r *Repository) ListAuditRecords(db *gorm.DB, targetType int32, targetID int64, offset, limit int) ([]model.AuditRecord, int64, error) {
	query := db.Model(&model.AuditRecord{})
	if targetType > 0 {
		query = query.Where("target_type = ?", targetType)
	}
	if targetID > 0 {
		query = query.Where("target_id = ?", targetID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.AuditRecord
	err := query.Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}
