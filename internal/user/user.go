// Package user contains the public user profile and username rules.
package user

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/validation"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	reservedUsername  = "me"
	maxUsernameLength = 150
)

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// Profile is a user as other users see it.
type Profile struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func NewProfile(u database.User, subscribed bool) Profile {
	return Profile{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

func ValidateUsername(username string) error {
	switch {
	case username == "":
		return validation.New("username", "Обязательное поле.")
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return validation.New("username", "Убедитесь, что это поле содержит не более 150 символов.")
	case username == reservedUsername:
		return validation.New("username", "Имя пользователя 'me' недоступно.")
	case !usernameRe.MatchString(username):
		return validation.New("username",
			"Введите правильное имя пользователя. Оно может содержать только буквы, цифры и знаки @/./+/-/_.")
	}
	return nil
}

// SubscribedSet returns the subset of authorIDs the viewer follows.
// Anonymous viewers follow nobody.
func SubscribedSet(
	ctx context.Context, q database.Querier, v viewer.Viewer, authorIDs []int64,
) (map[int64]bool, error) {
	set := make(map[int64]bool)
	userID, ok := viewer.UserID(v)
	if !ok || len(authorIDs) == 0 {
		return set, nil
	}
	ids, err := q.ListSubscribedAmong(ctx, database.ListSubscribedAmongParams{
		UserID:    userID,
		AuthorIDs: authorIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Profiles builds profiles for users with is_subscribed computed for v.
func Profiles(ctx context.Context, q database.Querier, v viewer.Viewer, users []database.User) ([]Profile, error) {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := SubscribedSet(ctx, q, v, ids)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, NewProfile(u, subscribed[u.ID]))
	}
	return profiles, nil
}
