package subscription

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/database/sqlite"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "foodgram.db"), log.NullLogger())
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, filestore.NewLocal(t.TempDir(), "", "http://localhost")), store
}

func createUser(t *testing.T, s *sqlite.Store, name string) database.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), database.CreateUserParams{
		Email: name + "@example.com", Username: name, FirstName: name, LastName: name,
		PasswordHash: "hash", Role: database.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func createRecipes(t *testing.T, s *sqlite.Store, authorID int64, n int) {
	t.Helper()
	for i := range n {
		_, err := s.CreateRecipe(context.Background(), database.CreateRecipeParams{
			AuthorID: authorID, Name: fmt.Sprintf("recipe %d", i), Image: "recipes/images/x.png",
			Text: "text", CookingTime: 5,
		})
		require.NoError(t, err)
	}
}

func TestSubscribe(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	follower := createUser(t, store, "follower")
	author := createUser(t, store, "author")
	createRecipes(t, store, author.ID, 3)

	got, err := svc.Subscribe(ctx, follower.ID, author.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)
	assert.True(t, got.IsSubscribed)
	assert.Len(t, got.Recipes, 2)
	assert.Equal(t, int64(3), got.RecipesCount)
	assert.Equal(t, "recipe 2", got.Recipes[0].Name, "newest recipes first")

	_, err = svc.Subscribe(ctx, follower.ID, author.ID, 0)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	_, err = svc.Subscribe(ctx, follower.ID, follower.ID, 0)
	assert.ErrorIs(t, err, ErrSelfSubscription)

	_, err = svc.Subscribe(ctx, follower.ID, 999, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnsubscribe(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	follower := createUser(t, store, "follower")
	author := createUser(t, store, "author")

	_, err := svc.Subscribe(ctx, follower.ID, author.ID, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, follower.ID, author.ID))
	err = svc.Unsubscribe(ctx, follower.ID, author.ID)
	assert.ErrorIs(t, err, ErrNotSubscribed)
	assert.Equal(t, "Вы не подписаны на этого пользователя", err.Error())

	assert.ErrorIs(t, svc.Unsubscribe(ctx, follower.ID, 999), ErrUserNotFound)
}

func TestList(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	follower := createUser(t, store, "follower")
	prolific := createUser(t, store, "prolific")
	quiet := createUser(t, store, "quiet")
	createUser(t, store, "stranger")
	createRecipes(t, store, prolific.ID, 4)

	for _, a := range []database.User{prolific, quiet} {
		_, err := svc.Subscribe(ctx, follower.ID, a.ID, 0)
		require.NoError(t, err)
	}

	got, count, err := svc.List(ctx, follower.ID, 10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, got, 2)

	assert.Equal(t, prolific.ID, got[0].ID)
	assert.Len(t, got[0].Recipes, 1)
	assert.Equal(t, int64(4), got[0].RecipesCount)

	assert.Equal(t, quiet.ID, got[1].ID)
	assert.NotNil(t, got[1].Recipes)
	assert.Empty(t, got[1].Recipes)
	assert.Zero(t, got[1].RecipesCount)

	got, count, err = svc.List(ctx, follower.ID, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, got, 1)
	assert.Equal(t, quiet.ID, got[0].ID)
}

func TestSubscribe_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	boom := errors.New("boom")
	mockDB.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(database.User{ID: 2}, nil)
	mockDB.EXPECT().
		CreateSubscription(gomock.Any(), database.SubscriptionParams{UserID: 1, AuthorID: 2}).
		Return(boom)

	svc := NewService(mockDB, filestore.NewLocal(t.TempDir(), "", ""))
	if _, err := svc.Subscribe(context.Background(), 1, 2, 0); !errors.Is(err, boom) {
		t.Errorf("Subscribe() error = %v, want %v", err, boom)
	}
}
