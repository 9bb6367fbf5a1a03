package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Task 任务，由组织发布的志愿工作单元
type Task struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrgID            int64      `gorm:"column:org_id;index" json:"org_id"`
	CreatorID        int64      `gorm:"column:creator_id" json:"creator_id"`
	Title            string     `gorm:"column:title;size:128" json:"title"`
	Description      string     `gorm:"column:description;type:text" json:"description"`
	Status           int32      `gorm:"column:status;index" json:"status"`
	Urgency          int32      `gorm:"column:urgency" json:"urgency"`
	SkillsRequired   string     `gorm:"column:skills_required;size:512" json:"skills_required"` // JSON数组字符串
	Latitude         *float64   `gorm:"column:latitude" json:"latitude"`
	Longitude        *float64   `gorm:"column:longitude" json:"longitude"`
	Address          string     `gorm:"column:address;size:255" json:"address"`
	VolunteersNeeded int32      `gorm:"column:volunteers_needed" json:"volunteers_needed"`
	ScheduledAt      *time.Time `gorm:"column:scheduled_at" json:"scheduled_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}

// SkillList 解析任务要求的技能列表
func (t *Task) SkillList() []string {
	return ParseSkills(t.SkillsRequired)
}

// taskTransitions 任务状态流转表
var taskTransitions = map[int32][]int32{
	TaskStatusPending:    {TaskStatusAssigned, TaskStatusCancelled},
	TaskStatusAssigned:   {TaskStatusInProgress, TaskStatusCancelled},
	TaskStatusInProgress: {TaskStatusCompleted, TaskStatusCancelled},
	TaskStatusCompleted:  {TaskStatusVerified},
}

// CanTaskTransition 返回任务状态流转是否合法
func CanTaskTransition(from, to int32) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseSkills 解析技能JSON数组字符串，解析失败时退回逗号分隔解析
func ParseSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err == nil {
		return normalizeSkills(skills)
	}
	return normalizeSkills(strings.Split(raw, ","))
}

// EncodeSkills 将技能列表编码为JSON数组字符串
func EncodeSkills(skills []string) string {
	skills = normalizeSkills(skills)
	if len(skills) == 0 {
		return ""
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return ""
	}
	return string(data)
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
