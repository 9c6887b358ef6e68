package invcommon

import (
	"context"
)

// ctxKeyType represents the type for all context keys
type ctxKeyType string

const (
	ctxUserContextKey ctxKeyType = "InventoryUserContext"
	ctxTestContextKey ctxKeyType = "InventoryTestContext"
)

// UserContext represents the context of an authenticated caller.
// It contains the caller's identity and role.
type UserContext struct {
	// UserID is the unique identifier for the user
	UserID string
	// Role determines what operations the user may perform
	Role Role
}

// WithUserContext sets the user context in the provided context.
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, ctxUserContextKey, user)
}

// GetUserContext retrieves the user context from the provided context.
// It returns nil if no user context is set.
func GetUserContext(ctx context.Context) *UserContext {
	if user, ok := ctx.Value(ctxUserContextKey).(*UserContext); ok {
		return user
	}
	return nil
}

// IsAdmin reports whether the context carries an admin caller.
func IsAdmin(ctx context.Context) bool {
	user := GetUserContext(ctx)
	return user != nil && user.Role.CanWrite()
}

// WithTestContext marks the context as a test context.
func WithTestContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxTestContextKey, true)
}

// IsTestContext reports whether the context is a test context.
func IsTestContext(ctx context.Context) bool {
	if v, ok := ctx.Value(ctxTestContextKey).(bool); ok {
		return v
	}
	return false
}
