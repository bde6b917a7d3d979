package viewer

import (
	"context"
	"testing"

	"github.com/matt-dz/foodgram/internal/role"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name     string
		viewer   Viewer
		authorID int64
		want     bool
	}{
		{name: "anonymous", viewer: Anonymous{}, authorID: 1, want: false},
		{name: "author", viewer: Authenticated{ID: 1, Role: role.RoleUser}, authorID: 1, want: true},
		{name: "other user", viewer: Authenticated{ID: 2, Role: role.RoleUser}, authorID: 1, want: false},
		{name: "admin", viewer: Authenticated{ID: 2, Role: role.RoleAdmin}, authorID: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.viewer, tt.authorID); got != tt.want {
				t.Errorf("CanEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromCtx(t *testing.T) {
	if _, ok := FromCtx(context.Background()).(Anonymous); !ok {
		t.Errorf("FromCtx() on empty context should be Anonymous")
	}

	want := Authenticated{ID: 5, Role: role.RoleUser}
	got := FromCtx(WithCtx(context.Background(), want))
	if got != want {
		t.Errorf("FromCtx() = %v, want %v", got, want)
	}
	if id, ok := UserID(got); !ok || id != 5 {
		t.Errorf("UserID() = %d, %v, want 5, true", id, ok)
	}
}
