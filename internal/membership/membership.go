// Package membership toggles a recipe in and out of a user's favorites or
// shopping cart.
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/recipe"
)

var (
	ErrAlreadyExists = errors.New("recipe already in list")
	ErrNotFound      = errors.New("recipe not in list")
)

// StateError reports an add of a present pair or a remove of an absent one.
// Its message is meant for the end user.
type StateError struct {
	Relation database.Relation
	err      error
}

func (e *StateError) Error() string {
	switch {
	case e.Relation == database.RelationFavorite && e.err == ErrAlreadyExists:
		return "Рецепт уже добавлен в избранное"
	case e.Relation == database.RelationFavorite:
		return "У вас нет этого рецепта в избранном"
	case e.err == ErrAlreadyExists:
		return "Рецепт уже добавлен в список покупок"
	default:
		return "У вас нет этого рецепта в списке покупок"
	}
}

func (e *StateError) Unwrap() error {
	return e.err
}

type Service struct {
	db    database.Querier
	files filestore.FileStore
}

func NewService(db database.Querier, files filestore.FileStore) *Service {
	return &Service{db: db, files: files}
}

// Add puts recipeID into the user's list of the given kind and returns the
// recipe summary.
func (s *Service) Add(ctx context.Context, kind database.Relation, userID, recipeID int64) (recipe.Summary, error) {
	r, err := s.db.GetRecipe(ctx, recipeID)
	if errors.Is(err, database.ErrNoRows) {
		return recipe.Summary{}, recipe.ErrRecipeNotFound
	} else if err != nil {
		return recipe.Summary{}, fmt.Errorf("getting recipe: %w", err)
	}

	err = s.db.CreateRecipeRelation(ctx, database.RecipeRelationParams{
		Relation: kind,
		UserID:   userID,
		RecipeID: recipeID,
	})
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		return recipe.Summary{}, &StateError{Relation: kind, err: ErrAlreadyExists}
	case errors.Is(err, database.ErrForeignKeyViolation):
		return recipe.Summary{}, recipe.ErrRecipeNotFound
	case err != nil:
		return recipe.Summary{}, fmt.Errorf("adding %s: %w", kind, err)
	}

	return recipe.Summarize(r, s.files), nil
}

// Remove takes recipeID out of the user's list of the given kind.
func (s *Service) Remove(ctx context.Context, kind database.Relation, userID, recipeID int64) error {
	if _, err := s.db.GetRecipe(ctx, recipeID); errors.Is(err, database.ErrNoRows) {
		return recipe.ErrRecipeNotFound
	} else if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}

	n, err := s.db.DeleteRecipeRelation(ctx, database.RecipeRelationParams{
		Relation: kind,
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("removing %s: %w", kind, err)
	}
	if n == 0 {
		return &StateError{Relation: kind, err: ErrNotFound}
	}
	return nil
}
