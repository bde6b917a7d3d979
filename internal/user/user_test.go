package user

import (
	"context"
	"strings"
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
	"go.uber.org/mock/gomock"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "plain", username: "chef_ivan", wantErr: false},
		{name: "allowed punctuation", username: "a.b@c+d-e", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "reserved", username: "me", wantErr: true},
		{name: "space", username: "chef ivan", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 151), wantErr: true},
		{name: "cyrillic", username: "повар_иван", wantErr: false},
		{name: "digits", username: "chef2024", wantErr: false},
		{name: "cyrillic at length limit", username: strings.Repeat("я", 150), wantErr: false},
		{name: "cyrillic too long", username: strings.Repeat("я", 151), wantErr: true},
		{name: "slash", username: "chef/ivan", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestProfiles(t *testing.T) {
	users := []database.User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}

	t.Run("anonymous never subscribed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := database.NewMockQuerier(ctrl)

		got, err := Profiles(context.Background(), mockDB, viewer.Anonymous{}, users)
		if err != nil {
			t.Fatalf("Profiles() error = %v", err)
		}
		for _, p := range got {
			if p.IsSubscribed {
				t.Errorf("profile %d subscribed for anonymous viewer", p.ID)
			}
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := database.NewMockQuerier(ctrl)
		mockDB.EXPECT().
			ListSubscribedAmong(gomock.Any(), database.ListSubscribedAmongParams{UserID: 9, AuthorIDs: []int64{1, 2}}).
			Return([]int64{2}, nil)

		got, err := Profiles(context.Background(), mockDB, viewer.Authenticated{ID: 9, Role: role.RoleUser}, users)
		if err != nil {
			t.Fatalf("Profiles() error = %v", err)
		}
		if got[0].IsSubscribed || !got[1].IsSubscribed {
			t.Errorf("Profiles() = %+v, want only user 2 subscribed", got)
		}
	})
}
