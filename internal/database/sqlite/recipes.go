package sqlite

import (
	"context"
	"strings"

	"github.com/matt-dz/foodgram/internal/database"
)

const recipeColumns = "r.id, r.author_id, r.name, r.image, r.text, r.cooking_time"

func scanRecipe(row scanner) (database.Recipe, error) {
	var r database.Recipe
	err := row.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Image, &r.Text, &r.CookingTime)
	return r, err
}

func (q *Queries) CreateRecipe(ctx context.Context, arg database.CreateRecipeParams) (database.Recipe, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO recipes (author_id, name, image, text, cooking_time)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, author_id, name, image, text, cooking_time`,
		arg.AuthorID, arg.Name, arg.Image, arg.Text, arg.CookingTime)
	r, err := scanRecipe(row)
	return r, translateError(err)
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg database.UpdateRecipeParams) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE recipes SET name = ?, image = ?, text = ?, cooking_time = ? WHERE id = ?`,
		arg.Name, arg.Image, arg.Text, arg.CookingTime, arg.ID)
	if err != nil {
		return translateError(err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return database.ErrNoRows
	}
	return nil
}

func (q *Queries) GetRecipe(ctx context.Context, id int64) (database.Recipe, error) {
	r, err := scanRecipe(q.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes r WHERE r.id = ?`, id))
	return r, translateError(err)
}

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return translateError(err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return database.ErrNoRows
	}
	return nil
}

func (q *Queries) ListRecipes(ctx context.Context, arg database.ListRecipesParams) ([]database.Recipe, error) {
	where, args := arg.Filter.WhereClause(database.Question, 1)
	args = append(args, arg.Limit, arg.Offset)
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes r`+where+` ORDER BY r.id DESC LIMIT ? OFFSET ?`, args...)
	return collect(rows, err, scanRecipe)
}

func (q *Queries) CountRecipes(ctx context.Context, filter database.RecipeFilter) (int64, error) {
	where, args := filter.WhereClause(database.Question, 1)
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes r`+where, args...).Scan(&count)
	return count, translateError(err)
}

func (q *Queries) ListRecipesByAuthors(
	ctx context.Context, arg database.ListRecipesByAuthorsParams,
) ([]database.Recipe, error) {
	if len(arg.AuthorIDs) == 0 {
		return []database.Recipe{}, nil
	}
	args := append(int64Args(arg.AuthorIDs), arg.PerAuthorLimit)
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, author_id, name, image, text, cooking_time FROM (
			SELECT `+recipeColumns+`,
				ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.id DESC) AS rn
			FROM recipes r
			WHERE r.author_id IN (`+inList(len(arg.AuthorIDs))+`)
		)
		WHERE rn <= ?
		ORDER BY author_id, id DESC`, args...)
	return collect(rows, err, scanRecipe)
}

func (q *Queries) CountRecipesByAuthors(
	ctx context.Context, authorIDs []int64,
) ([]database.AuthorRecipeCount, error) {
	if len(authorIDs) == 0 {
		return []database.AuthorRecipeCount{}, nil
	}
	rows, err := q.db.QueryContext(ctx,
		`SELECT author_id, COUNT(*) FROM recipes WHERE author_id IN (`+inList(len(authorIDs))+`) GROUP BY author_id`,
		int64Args(authorIDs)...)
	return collect(rows, err, func(row scanner) (database.AuthorRecipeCount, error) {
		var c database.AuthorRecipeCount
		err := row.Scan(&c.AuthorID, &c.Count)
		return c, err
	})
}

func (q *Queries) SetRecipeTags(ctx context.Context, arg database.SetRecipeTagsParams) error {
	if len(arg.TagIDs) == 0 {
		return nil
	}
	values := strings.TrimSuffix(strings.Repeat("(?, ?), ", len(arg.TagIDs)), ", ")
	args := make([]any, 0, len(arg.TagIDs)*2)
	for _, id := range arg.TagIDs {
		args = append(args, arg.RecipeID, id)
	}
	_, err := q.db.ExecContext(ctx, `INSERT INTO recipe_tags (recipe_id, tag_id) VALUES `+values, args...)
	return translateError(err)
}

func (q *Queries) DeleteRecipeTags(ctx context.Context, recipeID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM recipe_tags WHERE recipe_id = ?`, recipeID)
	return translateError(err)
}

func (q *Queries) ListRecipeTags(ctx context.Context, recipeIDs []int64) ([]database.RecipeTag, error) {
	if len(recipeIDs) == 0 {
		return []database.RecipeTag{}, nil
	}
	rows, err := q.db.QueryContext(ctx, `
		SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
		FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id IN (`+inList(len(recipeIDs))+`)
		ORDER BY rt.recipe_id, t.id`, int64Args(recipeIDs)...)
	return collect(rows, err, func(row scanner) (database.RecipeTag, error) {
		var rt database.RecipeTag
		err := row.Scan(&rt.RecipeID, &rt.ID, &rt.Name, &rt.Color, &rt.Slug)
		return rt, err
	})
}

func (q *Queries) CreateRecipeIngredients(
	ctx context.Context, arg database.CreateRecipeIngredientsParams,
) error {
	if len(arg.Ingredients) == 0 {
		return nil
	}
	values := strings.TrimSuffix(strings.Repeat("(?, ?, ?), ", len(arg.Ingredients)), ", ")
	args := make([]any, 0, len(arg.Ingredients)*3)
	for _, ing := range arg.Ingredients {
		args = append(args, arg.RecipeID, ing.IngredientID, ing.Amount)
	}
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount) VALUES `+values, args...)
	return translateError(err)
}

func (q *Queries) DeleteRecipeIngredients(ctx context.Context, recipeID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID)
	return translateError(err)
}

func (q *Queries) ListRecipeIngredients(
	ctx context.Context, recipeIDs []int64,
) ([]database.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return []database.RecipeIngredient{}, nil
	}
	rows, err := q.db.QueryContext(ctx, `
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id IN (`+inList(len(recipeIDs))+`)
		ORDER BY ri.recipe_id, i.id`, int64Args(recipeIDs)...)
	return collect(rows, err, func(row scanner) (database.RecipeIngredient, error) {
		var ri database.RecipeIngredient
		err := row.Scan(&ri.RecipeID, &ri.IngredientID, &ri.Name, &ri.MeasurementUnit, &ri.Amount)
		return ri, err
	})
}
