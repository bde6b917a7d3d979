package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/image"
	"github.com/matt-dz/foodgram/internal/user"
	"github.com/matt-dz/foodgram/internal/validation"
	"github.com/matt-dz/foodgram/internal/viewer"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	db     *database.Database
	files  filestore.FileStore
	logger *slog.Logger
}

func NewService(db *database.Database, files filestore.FileStore, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		files:  files,
		logger: logger,
	}
}

// Create validates p, stores its image and inserts the recipe with its tag
// and ingredient sets in one transaction.
func (s *Service) Create(ctx context.Context, v viewer.Viewer, p CreateParams) (Detail, error) {
	if strings.TrimSpace(p.Image) == "" {
		return Detail{}, validation.New("image", "Обязательное поле.")
	}
	tagIDs, err := s.checkFields(ctx, &p.Fields)
	if err != nil {
		return Detail{}, err
	}
	img, err := decodeImage(p.Image)
	if err != nil {
		return Detail{}, err
	}

	key, err := s.files.WriteRecipeImage(ctx, img.Suffix, img.MimeType, img.Data)
	if err != nil {
		return Detail{}, fmt.Errorf("storing recipe image: %w", err)
	}

	var created database.Recipe
	err = s.db.WithTx(ctx, func(q database.Querier) error {
		created, err = q.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID:    p.AuthorID,
			Name:        p.Name,
			Image:       key,
			Text:        p.Text,
			CookingTime: p.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}
		return writeComposition(ctx, q, created.ID, tagIDs, p.Ingredients)
	})
	if err != nil {
		s.discardImage(ctx, key)
		return Detail{}, err
	}

	return s.Get(ctx, v, created.ID)
}

// Replace overwrites every field of recipe id and swaps its tag and
// ingredient sets for the given ones. The old image is removed only after
// the new state is committed.
func (s *Service) Replace(ctx context.Context, v viewer.Viewer, id int64, f Fields) (Detail, error) {
	current, err := s.db.GetRecipe(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		return Detail{}, ErrRecipeNotFound
	} else if err != nil {
		return Detail{}, fmt.Errorf("getting recipe: %w", err)
	}

	tagIDs, err := s.checkFields(ctx, &f)
	if err != nil {
		return Detail{}, err
	}

	key := current.Image
	if strings.TrimSpace(f.Image) != "" {
		img, err := decodeImage(f.Image)
		if err != nil {
			return Detail{}, err
		}
		key, err = s.files.WriteRecipeImage(ctx, img.Suffix, img.MimeType, img.Data)
		if err != nil {
			return Detail{}, fmt.Errorf("storing recipe image: %w", err)
		}
	}

	err = s.db.WithTx(ctx, func(q database.Querier) error {
		err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
			ID:          id,
			Name:        f.Name,
			Image:       key,
			Text:        f.Text,
			CookingTime: f.CookingTime,
		})
		if errors.Is(err, database.ErrNoRows) {
			return ErrRecipeNotFound
		} else if err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}
		if err := q.DeleteRecipeTags(ctx, id); err != nil {
			return fmt.Errorf("clearing recipe tags: %w", err)
		}
		if err := q.DeleteRecipeIngredients(ctx, id); err != nil {
			return fmt.Errorf("clearing recipe ingredients: %w", err)
		}
		return writeComposition(ctx, q, id, tagIDs, f.Ingredients)
	})
	if err != nil {
		if key != current.Image {
			s.discardImage(ctx, key)
		}
		return Detail{}, err
	}
	if key != current.Image {
		s.discardImage(ctx, current.Image)
	}

	return s.Get(ctx, v, id)
}

// Delete removes recipe id. Join rows go with it through cascading keys.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.db.GetRecipe(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		return ErrRecipeNotFound
	} else if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}

	if err := s.db.DeleteRecipe(ctx, id); errors.Is(err, database.ErrNoRows) {
		return ErrRecipeNotFound
	} else if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	s.discardImage(ctx, current.Image)
	return nil
}

func (s *Service) Get(ctx context.Context, v viewer.Viewer, id int64) (Detail, error) {
	r, err := s.db.GetRecipe(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		return Detail{}, ErrRecipeNotFound
	} else if err != nil {
		return Detail{}, fmt.Errorf("getting recipe: %w", err)
	}
	details, err := s.Enrich(ctx, v, []database.Recipe{r})
	if err != nil {
		return Detail{}, err
	}
	return details[0], nil
}

// List returns one page of recipes matching filter, newest first, and the
// total number of matches.
func (s *Service) List(
	ctx context.Context, v viewer.Viewer, filter database.RecipeFilter, limit, offset int32,
) ([]Detail, int64, error) {
	count, err := s.db.CountRecipes(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("counting recipes: %w", err)
	}
	recipes, err := s.db.ListRecipes(ctx, database.ListRecipesParams{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing recipes: %w", err)
	}
	details, err := s.Enrich(ctx, v, recipes)
	if err != nil {
		return nil, 0, err
	}
	return details, count, nil
}

// Enrich attaches tags, ingredients, author profiles and the viewer's
// favorite and cart flags to recipes. The lookups run concurrently.
func (s *Service) Enrich(ctx context.Context, v viewer.Viewer, recipes []database.Recipe) ([]Detail, error) {
	if len(recipes) == 0 {
		return []Detail{}, nil
	}

	ids := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		if !slices.Contains(authorIDs, r.AuthorID) {
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	var (
		tags        = make(map[int64][]database.Tag)
		ingredients = make(map[int64][]IngredientLine)
		authors     = make(map[int64]user.Profile)
		favorited   = make(map[int64]bool)
		inCart      = make(map[int64]bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.db.ListRecipeTags(gctx, ids)
		if err != nil {
			return fmt.Errorf("listing recipe tags: %w", err)
		}
		for _, rt := range rows {
			tags[rt.RecipeID] = append(tags[rt.RecipeID], rt.Tag)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.db.ListRecipeIngredients(gctx, ids)
		if err != nil {
			return fmt.Errorf("listing recipe ingredients: %w", err)
		}
		for _, ri := range rows {
			ingredients[ri.RecipeID] = append(ingredients[ri.RecipeID], IngredientLine{
				ID:              ri.IngredientID,
				Name:            ri.Name,
				MeasurementUnit: ri.MeasurementUnit,
				Amount:          ri.Amount,
			})
		}
		return nil
	})
	g.Go(func() error {
		users, err := s.db.ListUsersByIDs(gctx, authorIDs)
		if err != nil {
			return fmt.Errorf("listing authors: %w", err)
		}
		profiles, err := user.Profiles(gctx, s.db, v, users)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			authors[p.ID] = p
		}
		return nil
	})
	if userID, ok := viewer.UserID(v); ok {
		related := func(rel database.Relation, into map[int64]bool) func() error {
			return func() error {
				found, err := s.db.ListRelatedRecipeIDs(gctx, database.ListRelatedRecipeIDsParams{
					Relation:  rel,
					UserID:    userID,
					RecipeIDs: ids,
				})
				if err != nil {
					return fmt.Errorf("listing %s recipes: %w", rel, err)
				}
				for _, id := range found {
					into[id] = true
				}
				return nil
			}
		}
		g.Go(related(database.RelationFavorite, favorited))
		g.Go(related(database.RelationShoppingCart, inCart))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(recipes))
	for _, r := range recipes {
		d := Detail{
			ID:               r.ID,
			Tags:             tags[r.ID],
			Author:           authors[r.AuthorID],
			Ingredients:      ingredients[r.ID],
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            s.files.URL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
		if d.Tags == nil {
			d.Tags = []database.Tag{}
		}
		if d.Ingredients == nil {
			d.Ingredients = []IngredientLine{}
		}
		details = append(details, d)
	}
	return details, nil
}

// checkFields validates f and returns its tag ids with duplicates collapsed.
func (s *Service) checkFields(ctx context.Context, f *Fields) ([]int64, error) {
	f.Name = strings.TrimSpace(f.Name)
	switch {
	case f.Name == "":
		return nil, validation.New("name", "Обязательное поле.")
	case utf8.RuneCountInString(f.Name) > MaxNameLength:
		return nil, validation.New("name", "Убедитесь, что это поле содержит не более 200 символов.")
	case strings.TrimSpace(f.Text) == "":
		return nil, validation.New("text", "Обязательное поле.")
	case f.CookingTime < 1:
		return nil, validation.New("cooking_time", "Убедитесь, что это значение больше либо равно 1.")
	case len(f.TagIDs) == 0:
		return nil, validation.New("tags", "Нужно указать хотя бы один тег.")
	case len(f.Ingredients) == 0:
		return nil, validation.New("ingredients", "Нужно указать хотя бы один ингредиент.")
	}

	ingredientIDs := make([]int64, 0, len(f.Ingredients))
	for _, ing := range f.Ingredients {
		if ing.Amount < 1 {
			return nil, validation.New("ingredients", "Количество ингредиента должно быть не меньше 1.")
		}
		if slices.Contains(ingredientIDs, ing.ID) {
			return nil, validation.New("ingredients", "Ингредиенты не должны повторяться.")
		}
		ingredientIDs = append(ingredientIDs, ing.ID)
	}

	tagIDs := make([]int64, 0, len(f.TagIDs))
	for _, id := range f.TagIDs {
		if !slices.Contains(tagIDs, id) {
			tagIDs = append(tagIDs, id)
		}
	}

	foundTags, err := s.db.ListTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if id, missing := firstMissing(tagIDs, foundTags, func(t database.Tag) int64 { return t.ID }); missing {
		return nil, validation.New("tags", fmt.Sprintf("Недопустимый первичный ключ \"%d\" - объект не существует.", id))
	}

	foundIngredients, err := s.db.ListIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	if id, missing := firstMissing(ingredientIDs, foundIngredients,
		func(i database.Ingredient) int64 { return i.ID }); missing {
		return nil, validation.New("ingredients",
			fmt.Sprintf("Недопустимый первичный ключ \"%d\" - объект не существует.", id))
	}

	return tagIDs, nil
}

func firstMissing[T any](want []int64, found []T, id func(T) int64) (int64, bool) {
	have := make(map[int64]bool, len(found))
	for _, f := range found {
		have[id(f)] = true
	}
	for _, w := range want {
		if !have[w] {
			return w, true
		}
	}
	return 0, false
}

func decodeImage(uri string) (*image.Image, error) {
	img, err := image.DecodeDataURI(uri)
	if errors.Is(err, image.ErrTooLarge) {
		return nil, validation.New("image", "Размер изображения не должен превышать 10 МБ.")
	} else if err != nil {
		return nil, validation.New("image", "Загрузите правильное изображение.")
	}
	return img, nil
}

func writeComposition(
	ctx context.Context, q database.Querier, recipeID int64, tagIDs []int64, ingredients []IngredientInput,
) error {
	if err := q.SetRecipeTags(ctx, database.SetRecipeTagsParams{RecipeID: recipeID, TagIDs: tagIDs}); err != nil {
		return fmt.Errorf("setting recipe tags: %w", err)
	}
	amounts := make([]database.IngredientAmount, 0, len(ingredients))
	for _, ing := range ingredients {
		amounts = append(amounts, database.IngredientAmount{IngredientID: ing.ID, Amount: ing.Amount})
	}
	err := q.CreateRecipeIngredients(ctx, database.CreateRecipeIngredientsParams{
		RecipeID:    recipeID,
		Ingredients: amounts,
	})
	if err != nil {
		return fmt.Errorf("creating recipe ingredients: %w", err)
	}
	return nil
}

func (s *Service) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.files.Delete(ctx, key); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete recipe image", slog.String("key", key), slog.Any("error", err))
	}
}
