// Package subscription manages follower to author edges and the
// subscriptions feed.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/user"
)

var (
	ErrSelfSubscription  = errors.New("Нельзя подписаться на самого себя")
	ErrAlreadySubscribed = errors.New("Вы уже подписаны на этого пользователя")
	ErrNotSubscribed     = errors.New("Вы не подписаны на этого пользователя")
	ErrUserNotFound      = errors.New("user not found")
)

// Subscribed is an author as shown in the subscriptions feed.
type Subscribed struct {
	user.Profile
	Recipes      []recipe.Summary `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}

type Service struct {
	db    database.Querier
	files filestore.FileStore
}

func NewService(db database.Querier, files filestore.FileStore) *Service {
	return &Service{db: db, files: files}
}

// Subscribe makes followerID follow authorID. recipesLimit caps the recipes
// embedded in the result; a value below 1 means no cap.
func (s *Service) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int32) (Subscribed, error) {
	author, err := s.db.GetUserByID(ctx, authorID)
	if errors.Is(err, database.ErrNoRows) {
		return Subscribed{}, ErrUserNotFound
	} else if err != nil {
		return Subscribed{}, fmt.Errorf("getting author: %w", err)
	}
	if followerID == authorID {
		return Subscribed{}, ErrSelfSubscription
	}

	err = s.db.CreateSubscription(ctx, database.SubscriptionParams{UserID: followerID, AuthorID: authorID})
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		return Subscribed{}, ErrAlreadySubscribed
	case errors.Is(err, database.ErrCheckViolation):
		return Subscribed{}, ErrSelfSubscription
	case errors.Is(err, database.ErrForeignKeyViolation):
		return Subscribed{}, ErrUserNotFound
	case err != nil:
		return Subscribed{}, fmt.Errorf("creating subscription: %w", err)
	}

	subs, err := s.withRecipes(ctx, []database.User{author}, recipesLimit)
	if err != nil {
		return Subscribed{}, err
	}
	return subs[0], nil
}

func (s *Service) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	if _, err := s.db.GetUserByID(ctx, authorID); errors.Is(err, database.ErrNoRows) {
		return ErrUserNotFound
	} else if err != nil {
		return fmt.Errorf("getting author: %w", err)
	}

	n, err := s.db.DeleteSubscription(ctx, database.SubscriptionParams{UserID: followerID, AuthorID: authorID})
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}
	if n == 0 {
		return ErrNotSubscribed
	}
	return nil
}

// List returns one page of the authors followerID follows and their total.
func (s *Service) List(
	ctx context.Context, followerID int64, limit, offset, recipesLimit int32,
) ([]Subscribed, int64, error) {
	count, err := s.db.CountSubscribedAuthors(ctx, followerID)
	if err != nil {
		return nil, 0, fmt.Errorf("counting subscriptions: %w", err)
	}
	authors, err := s.db.ListSubscribedAuthors(ctx, database.ListSubscribedAuthorsParams{
		UserID: followerID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing subscriptions: %w", err)
	}
	subs, err := s.withRecipes(ctx, authors, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return subs, count, nil
}

// withRecipes attaches each author's newest recipes and recipe count. Every
// author passed in is followed by the caller.
func (s *Service) withRecipes(ctx context.Context, authors []database.User, recipesLimit int32) ([]Subscribed, error) {
	subs := make([]Subscribed, 0, len(authors))
	if len(authors) == 0 {
		return subs, nil
	}
	if recipesLimit < 1 {
		recipesLimit = math.MaxInt32
	}

	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	recipes, err := s.db.ListRecipesByAuthors(ctx, database.ListRecipesByAuthorsParams{
		AuthorIDs:      ids,
		PerAuthorLimit: recipesLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing author recipes: %w", err)
	}
	counts, err := s.db.CountRecipesByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("counting author recipes: %w", err)
	}

	byAuthor := make(map[int64][]recipe.Summary, len(authors))
	for _, r := range recipes {
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], recipe.Summarize(r, s.files))
	}
	countByAuthor := make(map[int64]int64, len(counts))
	for _, c := range counts {
		countByAuthor[c.AuthorID] = c.Count
	}

	for _, a := range authors {
		summaries := byAuthor[a.ID]
		if summaries == nil {
			summaries = []recipe.Summary{}
		}
		subs = append(subs, Subscribed{
			Profile:      user.NewProfile(a, true),
			Recipes:      summaries,
			RecipesCount: countByAuthor[a.ID],
		})
	}
	return subs, nil
}
