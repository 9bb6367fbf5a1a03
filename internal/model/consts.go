package model

const (
	// 账户身份类型
	IdentityVolunteer    int32 = 1 // 志愿者
	IdentityOrganization int32 = 2 // 组织管理者
	IdentityAdmin        int32 = 3 // 平台管理员

	// 账户状态
	AccountStatusNormal   int32 = 1 // 正常
	AccountStatusDisabled int32 = 2 // 停用

	// 志愿者档案状态
	VolunteerStatusActive   int32 = 1 // 活跃（可参与匹配）
	VolunteerStatusInactive int32 = 2 // 停用

	// 任务状态
	TaskStatusPending    int32 = 1 // 待指派
	TaskStatusAssigned   int32 = 2 // 已指派
	TaskStatusInProgress int32 = 3 // 进行中
	TaskStatusCompleted  int32 = 4 // 已完成
	TaskStatusVerified   int32 = 5 // 已核验
	TaskStatusCancelled  int32 = 6 // 已取消

	// 任务紧急程度
	UrgencyLow      int32 = 1 // 低
	UrgencyMedium   int32 = 2 // 中
	UrgencyHigh     int32 = 3 // 高
	UrgencyCritical int32 = 4 // 紧急

	// 指派状态
	AssignmentStatusPending    int32 = 1 // 待响应
	AssignmentStatusAccepted   int32 = 2 // 已接受
	AssignmentStatusRejected   int32 = 3 // 已拒绝
	AssignmentStatusInProgress int32 = 4 // 进行中
	AssignmentStatusCompleted  int32 = 5 // 已完成
	AssignmentStatusVerified   int32 = 6 // 已核验

	// 积分流水类型
	PointTxEarn       int32 = 1 // 获得
	PointTxRedeem     int32 = 2 // 兑换
	PointTxAdjustment int32 = 3 // 调整

	// 徽章上链状态
	MintStatusPending int32 = 1 // 待上链
	MintStatusMinted  int32 = 2 // 已上链
	MintStatusFailed  int32 = 3 // 上链失败

	// 成员状态
	MemberStatusActive int32 = 1 // 正式成员
	MemberStatusLeft   int32 = 2 // 已退出
)

// matchableTaskStatuses 允许发起匹配的任务状态
var matchableTaskStatuses = map[int32]struct{}{
	TaskStatusPending:    {},
	TaskStatusAssigned:   {},
	TaskStatusInProgress: {},
}

// IsTaskMatchable 返回任务是否处于可匹配状态
func IsTaskMatchable(status int32) bool {
	_, ok := matchableTaskStatuses[status]
	return ok
}

// activeAssignmentStatuses 计入志愿者工作量的指派状态
var activeAssignmentStatuses = []int32{
	AssignmentStatusPending,
	AssignmentStatusAccepted,
	AssignmentStatusInProgress,
}

// ActiveAssignmentStatuses 返回计入工作量的指派状态列表
func ActiveAssignmentStatuses() []int32 {
	return activeAssignmentStatuses
}

// IsValidUrgency 返回紧急程度是否合法
func IsValidUrgency(urgency int32) bool {
	return urgency >= UrgencyLow && urgency <= UrgencyCritical
}

// IsValidPointTxType 返回积分流水类型是否合法
func IsValidPointTxType(txType int32) bool {
	switch txType {
	case PointTxEarn, PointTxRedeem, PointTxAdjustment:
		return true
	default:
		return false
	}
}

// GetIdentityTypeCode 根据身份字符串返回对应的数字代码
func GetIdentityTypeCode(identity string) int32 {
	switch identity {
	case "volunteer":
		return IdentityVolunteer
	case "organization":
		return IdentityOrganization
	case "admin":
		return IdentityAdmin
	default:
		return 0 // 未知类型返回0
	}
}

// GetIdentityTypeName 根据身份数字代码返回身份字符串
func GetIdentityTypeName(code int32) string {
	switch code {
	case IdentityVolunteer:
		return "volunteer"
	case IdentityOrganization:
		return "organization"
	case IdentityAdmin:
		return "admin"
	default:
		return ""
	}
}
