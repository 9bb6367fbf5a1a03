package model

import "time"

// Assignment 指派，关联任务与志愿者，有独立生命周期
type Assignment struct {
	ID                int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TaskID            int64      `gorm:"column:task_id;index" json:"task_id"`
	OrgID             int64      `gorm:"column:org_id;index" json:"org_id"`
	VolunteerID       int64      `gorm:"column:volunteer_id;index" json:"volunteer_id"`
	AssignerID        int64      `gorm:"column:assigner_id" json:"assigner_id"` // 0表示系统自动指派
	Status            int32      `gorm:"column:status;index" json:"status"`
	AssignedAt        time.Time  `gorm:"column:assigned_at" json:"assigned_at"`
	RespondedAt       *time.Time `gorm:"column:responded_at" json:"responded_at"`
	CompletedAt       *time.Time `gorm:"column:completed_at" json:"completed_at"`
	Rating            int32      `gorm:"column:rating" json:"rating"` // 1-5，0表示未评分
	Feedback          string     `gorm:"column:feedback;size:512" json:"feedback"`
	VerificationNotes string     `gorm:"column:verification_notes;size:512" json:"verification_notes"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Assignment) TableName() string {
	return "assignments"
}

// assignmentTransitions 指派状态流转表
// 核验（VERIFIED）允许从任意非终态直达：组织可以在志愿者未逐步确认的情况下直接核验完成
var assignmentTransitions = map[int32][]int32{
	AssignmentStatusPending:    {AssignmentStatusAccepted, AssignmentStatusRejected, AssignmentStatusVerified},
	AssignmentStatusAccepted:   {AssignmentStatusInProgress, AssignmentStatusVerified},
	AssignmentStatusInProgress: {AssignmentStatusCompleted, AssignmentStatusVerified},
	AssignmentStatusCompleted:  {AssignmentStatusVerified},
}

// CanAssignmentTransition 返回指派状态流转是否合法
// REJECTED 与 VERIFIED 为终态，不允许任何流出
func CanAssignmentTransition(from, to int32) bool {
	for _, next := range assignmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsAssignmentFinal 返回指派状态是否为终态
func IsAssignmentFinal(status int32) bool {
	return status == AssignmentStatusRejected || status == AssignmentStatusVerified
}
