// Package viewer models who is making a request: an authenticated user or
// an anonymous visitor.
package viewer

import (
	"context"

	"github.com/matt-dz/foodgram/internal/role"
)

// Viewer is either Authenticated or Anonymous.
type Viewer interface {
	isViewer()
}

type Authenticated struct {
	ID   int64
	Role role.Role
}

type Anonymous struct{}

func (Authenticated) isViewer() {}
func (Anonymous) isViewer()     {}

type viewerKeyType struct{}

var viewerKey viewerKeyType

func WithCtx(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

// FromCtx returns the viewer stored in ctx, or Anonymous if none is.
func FromCtx(ctx context.Context) Viewer {
	if v, ok := ctx.Value(viewerKey).(Viewer); ok && v != nil {
		return v
	}
	return Anonymous{}
}

// UserID returns the id of an authenticated viewer.
func UserID(v Viewer) (int64, bool) {
	if a, ok := v.(Authenticated); ok {
		return a.ID, true
	}
	return 0, false
}

func IsAdmin(v Viewer) bool {
	a, ok := v.(Authenticated)
	return ok && a.Role.AtLeast(role.RoleAdmin)
}

// CanEdit reports whether v may modify a resource owned by authorID.
func CanEdit(v Viewer, authorID int64) bool {
	a, ok := v.(Authenticated)
	if !ok {
		return false
	}
	return a.ID == authorID || a.Role.AtLeast(role.RoleAdmin)
}
