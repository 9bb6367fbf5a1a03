package api

import "time"

// OrgInfo 组织信息
type OrgInfo struct {
	ID            int64     `json:"id"`
	AccountID     int64     `json:"account_id"`
	OrgName       string    `json:"org_name"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddOrgMemberRequest 添加组织成员请求
type AddOrgMemberRequest struct {
	AccountID int64 `json:"account_id"`
}

// OrgMemberInfo 组织成员信息
type OrgMemberInfo struct {
	AccountID int64      `json:"account_id"`
	Username  string     `json:"username"`
	Status    int32      `json:"status"`
	JoinedAt  *time.Time `json:"joined_at"`
}

// OrgMemberListResponse 组织成员列表响应
type OrgMemberListResponse struct {
	OrgID   int64           `json:"org_id"`
	Members []OrgMemberInfo `json:"members"`
}

// AuditRecordInfo 审计记录信息
type AuditRecordInfo struct {
	ID         int64     `json:"id"`
	TargetType int32     `json:"target_type"` // 1指派核验 2匹配
	TargetID   int64     `json:"target_id"`
	OperatorID int64     `json:"operator_id"`
	Detail     string    `json:"detail"` // JSON文本
	CreatedAt  time.Time `json:"created_at"`
}

// AuditRecordListRequest 审计记录查询
type AuditRecordListRequest struct {
	PageRequest
	TargetType int32 `query:"target_type"`
	TargetID   int64 `query:"target_id"`
}

// AuditRecordListResponse 审计记录列表响应
type AuditRecordListResponse struct {
	Total   int64             `json:"total"`
	Records []AuditRecordInfo `json:"records"`
}
