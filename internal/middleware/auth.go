package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"volunteer-platform/internal/response"
	"volunteer-platform/pkg/util"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v5"
)

// 上下文中的用户信息键
const (
	UserIDKey    = "user_id"
	TokenTypeKey = "token_type"
	RoleKey      = "role"
)

// Auth JWT认证中间件
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		authHeader := string(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.FailWithCode(c, consts.StatusUnauthorized, errors.New("未提供认证令牌"))
			c.Abort()
			return
		}

		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			response.FailWithCode(c, consts.StatusUnauthorized, errors.New("认证令牌格式错误"))
			c.Abort()
			return
		}

		tokenString := tokenParts[1]
		if tokenString == "" {
			response.FailWithCode(c, consts.StatusUnauthorized, errors.New("认证令牌为空"))
			c.Abort()
			return
		}

		jwtManager := util.GetJWTManager()
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			errMsg := "认证令牌无效"
			if errors.Is(err, jwt.ErrTokenExpired) {
				errMsg = "认证令牌已过期，请刷新"
			}
			response.FailWithCode(c, consts.StatusUnauthorized, errors.New(errMsg))
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(TokenTypeKey, claims.TokenType)
		c.Set(RoleKey, claims.Role)

		c.Next(ctx)
	}
}

// Optional 可选认证中间件（认证失败不中断）
func Optional() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		authHeader := string(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Next(ctx)
			return
		}

		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.Next(ctx)
			return
		}

		tokenString := tokenParts[1]
		jwtManager := util.GetJWTManager()
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next(ctx)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(TokenTypeKey, claims.TokenType)
		c.Set(RoleKey, claims.Role)

		c.Next(ctx)
	}
}

// RequireRoles 角色校验中间件，需在 Auth 之后挂载
func RequireRoles(roles ...string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		role, err := GetRole(c)
		if err != nil {
			response.FailWithCode(c, consts.StatusUnauthorized, errors.New("未认证"))
			c.Abort()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next(ctx)
				return
			}
		}
		response.FailWithCode(c, consts.StatusForbidden, errors.New("无权执行该操作"))
		c.Abort()
	}
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *app.RequestContext) (string, error) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", errors.New("用户ID未找到")
	}
	userIDStr, ok := userID.(string)
	if !ok {
		return "", errors.New("用户ID类型错误")
	}
	return userIDStr, nil
}

// GetUserIDInt 从上下文获取用户ID（int64）
func GetUserIDInt(c *app.RequestContext) (int64, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(userID, 10, 64)
}

// GetRole 从上下文获取用户角色
func GetRole(c *app.RequestContext) (string, error) {
	role, exists := c.Get(RoleKey)
	if !exists {
		return "", errors.New("用户角色未找到")
	}
	roleStr, ok := role.(string)
	if !ok {
		return "", errors.New("用户角色类型错误")
	}
	return roleStr, nil
}
