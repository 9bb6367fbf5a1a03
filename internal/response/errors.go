package response

import (
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
)

// Errors 自定义错误类型
type Errors struct {
	code    int
	message string
}

// Code 获取错误码
func (e *Errors) Code() int {
	return e.code
}

// Error 实现error接口
func (e *Errors) Error() string {
	return e.message
}

// NewError 创建新的错误
func NewError(code int, message string) *Errors {
	return &Errors{
		code:    code,
		message: message,
	}
}

// 预定义错误码
const (
	// 通用错误码
	ErrCodeSuccess       = 200
	ErrCodeBadRequest    = 400
	ErrCodeUnauthorized  = 401
	ErrCodeForbidden     = 403
	ErrCodeNotFound      = 404
	ErrCodeInternalError = 500

	// 业务错误码 (1000-1999)
	ErrCodeInvalidParams    = 1001
	ErrCodeUserNotFound     = 1002
	ErrCodeUserExists       = 1003
	ErrCodePasswordError    = 1004
	ErrCodeTokenExpired     = 1005
	ErrCodeTokenInvalid     = 1006
	ErrCodePermissionDenied = 1007
	ErrCodeResourceNotFound = 1008
	ErrCodeOperationFailed  = 1009
	ErrCodeRateLimit        = 1010

	// 匹配/任务错误码 (2000-2099)
	ErrCodeTaskNotFound      = 2001
	ErrCodeTaskNotMatchable  = 2002
	ErrCodeVolunteerNotFound = 2003
	ErrCodeAssignmentExists  = 2004
	ErrCodeTaskFull          = 2005
	ErrCodeNoCandidates      = 2006

	// 指派生命周期错误码 (2100-2199)
	ErrCodeAssignmentNotFound = 2101
	ErrCodeInvalidTransition  = 2102
	ErrCodeAlreadyVerified    = 2103
	ErrCodeInvalidRating      = 2104

	// 组织错误码 (2200-2299)
	ErrCodeOrgNotFound  = 2201
	ErrCodeNotOrgMember = 2202
)

// 预定义错误
var (
	// 通用错误
	ErrSuccess       = NewError(ErrCodeSuccess, "success")
	ErrBadRequest    = NewError(ErrCodeBadRequest, "bad request")
	ErrUnauthorized  = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrForbidden     = NewError(ErrCodeForbidden, "forbidden")
	ErrNotFound      = NewError(ErrCodeNotFound, "not found")
	ErrInternalError = NewError(ErrCodeInternalError, "internal server error")

	// 业务错误
	ErrInvalidParams    = NewError(ErrCodeInvalidParams, "invalid parameters")
	ErrUserNotFound     = NewError(ErrCodeUserNotFound, "user not found")
	ErrUserExists       = NewError(ErrCodeUserExists, "user already exists")
	ErrPasswordError    = NewError(ErrCodePasswordError, "password error")
	ErrTokenExpired     = NewError(ErrCodeTokenExpired, "token expired")
	ErrTokenInvalid     = NewError(ErrCodeTokenInvalid, "token invalid")
	ErrPermissionDenied = NewError(ErrCodePermissionDenied, "permission denied")
	ErrResourceNotFound = NewError(ErrCodeResourceNotFound, "resource not found")
	ErrOperationFailed  = NewError(ErrCodeOperationFailed, "operation failed")
	ErrRateLimit        = NewError(ErrCodeRateLimit, "rate limit exceeded")

	// 匹配/任务错误
	ErrTaskNotFound      = NewError(ErrCodeTaskNotFound, "task not found")
	ErrTaskNotMatchable  = NewError(ErrCodeTaskNotMatchable, "task is not open for matching")
	ErrVolunteerNotFound = NewError(ErrCodeVolunteerNotFound, "volunteer not found")
	ErrAssignmentExists  = NewError(ErrCodeAssignmentExists, "volunteer already assigned to this task")
	ErrTaskFull          = NewError(ErrCodeTaskFull, "task has no available slots")
	ErrNoCandidates      = NewError(ErrCodeNoCandidates, "no eligible candidates for this task")

	// 指派生命周期错误
	ErrAssignmentNotFound = NewError(ErrCodeAssignmentNotFound, "assignment not found")
	ErrInvalidTransition  = NewError(ErrCodeInvalidTransition, "invalid assignment status transition")
	ErrAlreadyVerified    = NewError(ErrCodeAlreadyVerified, "assignment already verified")
	ErrInvalidRating      = NewError(ErrCodeInvalidRating, "rating must be between 1 and 5")

	// 组织错误
	ErrOrgNotFound  = NewError(ErrCodeOrgNotFound, "organization not found")
	ErrNotOrgMember = NewError(ErrCodeNotOrgMember, "not a member of this organization")
)

// IsErrorCode 检查错误是否为特定错误码
func IsErrorCode(err error, code int) bool {
	var customErr *Errors
	if errors.As(err, &customErr) {
		return customErr.code == code
	}
	return false
}

// GetErrorCode 获取错误的错误码
func GetErrorCode(err error) int {
	var customErr *Errors
	if errors.As(err, &customErr) {
		return customErr.code
	}
	return ErrCodeInternalError
}

// Error 错误响应
func Error(c *app.RequestContext, err error) {
	var customErr *Errors
	if errors.As(err, &customErr) {
		FailWithError(c, customErr)
	} else {
		Fail(c, err)
	}
}

// WithDetails 为错误添加详细信息
func (e *Errors) WithDetails(details string) *Errors {
	return &Errors{
		code:    e.code,
		message: e.message + ": " + details,
	}
}
