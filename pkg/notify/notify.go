package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"volunteer-platform/pkg/database/redis"
	"volunteer-platform/pkg/logger"
)

// AssignmentChannel 指派通知发布频道，由下游通知服务订阅后投递邮件/推送
const AssignmentChannel = "notify:assignment"

// AssignmentNotice 指派通知内容
type AssignmentNotice struct {
	AssignmentID int64     `json:"assignment_id"`
	TaskID       int64     `json:"task_id"`
	TaskTitle    string    `json:"task_title"`
	VolunteerID  int64     `json:"volunteer_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// NotifyVolunteerAssignment 发布指派通知，尽力而为
// 失败只记录日志，绝不向调用方传播错误（通知不参与匹配事务）
func NotifyVolunteerAssignment(ctx context.Context, notice *AssignmentNotice) {
	log := logger.GetLogger()

	if err := publish(ctx, notice); err != nil {
		log.Warn("指派通知发送失败: %v, assignment_id=%d volunteer_id=%d", err, notice.AssignmentID, notice.VolunteerID)
		return
	}
	log.Info("指派通知已发送: assignment_id=%d task_id=%d volunteer_id=%d", notice.AssignmentID, notice.TaskID, notice.VolunteerID)
}

func publish(ctx context.Context, notice *AssignmentNotice) error {
	rdb := redis.GetRedis()
	if rdb == nil {
		return errors.New("Redis未初始化")
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	return rdb.Publish(ctx, AssignmentChannel, payload).Err()
}
