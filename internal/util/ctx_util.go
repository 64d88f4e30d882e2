package util

import (
	"context"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
)

// GetSessionFromContext 從請求上下文中取得session
// session middleware沒掛上時回傳nil
func GetSessionFromContext(ctx context.Context) *session.Session {
	if v := ctx.Value(constants.SessionContextKey); v != nil {
		return v.(*session.Session)
	}
	return nil
}

// GetRequestIDFromContext 取得request id, 不存在回傳unknown
func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		return v.(string)
	}
	return "unknown"
}
