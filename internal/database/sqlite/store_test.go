package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), log.NullLogger())
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createUser(t *testing.T, s *Store, name string) database.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), database.CreateUserParams{
		Email:        name + "@example.com",
		Username:     name,
		FirstName:    name,
		LastName:     name,
		PasswordHash: "hash",
		Role:         database.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func createTag(t *testing.T, s *Store, slug, color string) database.Tag {
	t.Helper()
	tag, err := s.CreateTag(context.Background(), database.CreateTagParams{Name: slug, Color: color, Slug: slug})
	require.NoError(t, err)
	return tag
}

func createRecipe(t *testing.T, s *Store, authorID int64, name string, tagIDs ...int64) database.Recipe {
	t.Helper()
	ctx := context.Background()
	r, err := s.CreateRecipe(ctx, database.CreateRecipeParams{
		AuthorID:    authorID,
		Name:        name,
		Image:       "media/recipes/" + name + ".png",
		Text:        "text",
		CookingTime: 10,
	})
	require.NoError(t, err)
	require.NoError(t, s.SetRecipeTags(ctx, database.SetRecipeTagsParams{RecipeID: r.ID, TagIDs: tagIDs}))
	return r
}

func recipeIDs(recipes []database.Recipe) []int64 {
	ids := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSearchIngredients_UnicodePrefix(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Молоко", "молотый перец", "Карамель", "Карамол", "Mango"} {
		_, err := s.CreateIngredient(ctx, database.CreateIngredientParams{Name: name, MeasurementUnit: "г"})
		require.NoError(t, err)
	}

	got, err := s.SearchIngredients(ctx, "мол")
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, ing := range got {
		names = append(names, ing.Name)
	}
	assert.Equal(t, []string{"Молоко", "молотый перец"}, names)

	got, err = s.SearchIngredients(ctx, "MAN")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mango", got[0].Name)

	got, err = s.SearchIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	createUser(t, s, "alice")

	_, err := s.CreateUser(context.Background(), database.CreateUserParams{
		Email:        "alice@example.com",
		Username:     "alice2",
		FirstName:    "a",
		LastName:     "b",
		PasswordHash: "hash",
		Role:         database.RoleUser,
	})
	assert.ErrorIs(t, err, database.ErrUniqueViolation)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, database.ErrNoRows)
}

func TestRecipeRelation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	author := createUser(t, s, "author")
	reader := createUser(t, s, "reader")
	r := createRecipe(t, s, author.ID, "soup")

	for _, rel := range []database.Relation{database.RelationFavorite, database.RelationShoppingCart} {
		t.Run(rel.String(), func(t *testing.T) {
			arg := database.RecipeRelationParams{Relation: rel, UserID: reader.ID, RecipeID: r.ID}
			require.NoError(t, s.CreateRecipeRelation(ctx, arg))
			assert.ErrorIs(t, s.CreateRecipeRelation(ctx, arg), database.ErrUniqueViolation)

			ids, err := s.ListRelatedRecipeIDs(ctx, database.ListRelatedRecipeIDsParams{
				Relation: rel, UserID: reader.ID, RecipeIDs: []int64{r.ID},
			})
			require.NoError(t, err)
			assert.Equal(t, []int64{r.ID}, ids)

			n, err := s.DeleteRecipeRelation(ctx, arg)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)

			n, err = s.DeleteRecipeRelation(ctx, arg)
			require.NoError(t, err)
			assert.Equal(t, int64(0), n)
		})
	}
}

func TestSubscription_SelfRejected(t *testing.T) {
	s := newTestStore(t)
	u := createUser(t, s, "narcissus")

	err := s.CreateSubscription(context.Background(), database.SubscriptionParams{UserID: u.ID, AuthorID: u.ID})
	assert.ErrorIs(t, err, database.ErrCheckViolation)
}

func TestListRecipes_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	breakfast := createTag(t, s, "breakfast", "#E26C2D")
	lunch := createTag(t, s, "lunch", "#49B64E")
	dinner := createTag(t, s, "dinner", "#8775D2")

	r1 := createRecipe(t, s, alice.ID, "porridge", breakfast.ID)
	r2 := createRecipe(t, s, alice.ID, "salad", lunch.ID, dinner.ID)
	r3 := createRecipe(t, s, bob.ID, "steak", dinner.ID)
	require.NoError(t, s.CreateRecipeRelation(ctx, database.RecipeRelationParams{
		Relation: database.RelationFavorite, UserID: bob.ID, RecipeID: r1.ID,
	}))

	tests := []struct {
		name   string
		filter database.RecipeFilter
		want   []int64
	}{
		{name: "no filter", filter: database.RecipeFilter{}, want: []int64{r3.ID, r2.ID, r1.ID}},
		{name: "author", filter: database.RecipeFilter{AuthorID: &alice.ID}, want: []int64{r2.ID, r1.ID}},
		{
			name:   "tags are OR-ed",
			filter: database.RecipeFilter{TagSlugs: []string{"breakfast", "lunch"}},
			want:   []int64{r2.ID, r1.ID},
		},
		{
			name:   "single tag shared by two recipes",
			filter: database.RecipeFilter{TagSlugs: []string{"dinner"}},
			want:   []int64{r3.ID, r2.ID},
		},
		{name: "favorited", filter: database.RecipeFilter{FavoritedBy: &bob.ID}, want: []int64{r1.ID}},
		{name: "in cart", filter: database.RecipeFilter{InCartOf: &bob.ID}, want: []int64{}},
		{
			name:   "author and tag",
			filter: database.RecipeFilter{AuthorID: &bob.ID, TagSlugs: []string{"dinner", "lunch"}},
			want:   []int64{r3.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListRecipes(ctx, database.ListRecipesParams{Filter: tt.filter, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipeIDs(got))

			count, err := s.CountRecipes(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), count)
		})
	}
}

func TestListRecipesByAuthors_PerAuthorLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	for i := range 3 {
		createRecipe(t, s, alice.ID, fmt.Sprintf("a%d", i))
	}
	createRecipe(t, s, bob.ID, "b0")

	got, err := s.ListRecipesByAuthors(ctx, database.ListRecipesByAuthorsParams{
		AuthorIDs:      []int64{alice.ID, bob.ID},
		PerAuthorLimit: 2,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a2", got[0].Name)
	assert.Equal(t, "a1", got[1].Name)
	assert.Equal(t, "b0", got[2].Name)

	counts, err := s.CountRecipesByAuthors(ctx, []int64{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []database.AuthorRecipeCount{
		{AuthorID: alice.ID, Count: 3},
		{AuthorID: bob.ID, Count: 1},
	}, counts)
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, s, "cook")
	tag := createTag(t, s, "soup", "#000000")
	ing, err := s.CreateIngredient(ctx, database.CreateIngredientParams{Name: "соль", MeasurementUnit: "г"})
	require.NoError(t, err)
	r := createRecipe(t, s, u.ID, "borscht", tag.ID)
	require.NoError(t, s.CreateRecipeIngredients(ctx, database.CreateRecipeIngredientsParams{
		RecipeID:    r.ID,
		Ingredients: []database.IngredientAmount{{IngredientID: ing.ID, Amount: 5}},
	}))
	require.NoError(t, s.CreateRecipeRelation(ctx, database.RecipeRelationParams{
		Relation: database.RelationShoppingCart, UserID: u.ID, RecipeID: r.ID,
	}))

	require.NoError(t, s.DeleteRecipe(ctx, r.ID))
	assert.ErrorIs(t, s.DeleteRecipe(ctx, r.ID), database.ErrNoRows)

	cart, err := s.ListShoppingCartIngredients(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	tags, err := s.ListRecipeTags(ctx, []int64{r.ID})
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestInTx_RollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, s, "cook")
	errBoom := errors.New("boom")

	err := s.InTx(ctx, func(q database.Querier) error {
		if _, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID: u.ID, Name: "ghost", Image: "x", Text: "x", CookingTime: 1,
		}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	count, err := s.CountRecipes(ctx, database.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateRecipe_CheckConstraint(t *testing.T) {
	s := newTestStore(t)
	u := createUser(t, s, "cook")

	_, err := s.CreateRecipe(context.Background(), database.CreateRecipeParams{
		AuthorID: u.ID, Name: "instant", Image: "x", Text: "x", CookingTime: 0,
	})
	assert.ErrorIs(t, err, database.ErrCheckViolation)
}
