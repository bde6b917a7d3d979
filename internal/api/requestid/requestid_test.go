package requestid

import (
	"context"
	"testing"
)

func TestFromCtx(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "missing", ctx: context.Background(), want: "0"},
		{name: "injected", ctx: InjectRequestID(context.Background(), 1736942400123), want: "1736942400123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromCtx(tt.ctx); got != tt.want {
				t.Errorf("FromCtx() = %q, want %q", got, tt.want)
			}
		})
	}
}
