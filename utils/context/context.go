package context

import (
	"context"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetUserRole(ctx context.Context) (constant.UserRole, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.UserRole)
	return role, ok
}

// WithIdentity stores the authenticated caller in ctx.
func WithIdentity(ctx context.Context, userID string, role constant.UserRole) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.UserRoleKey, role)
}
