package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/foodgram/internal/database"
)

const recipeColumns = "r.id, r.author_id, r.name, r.image, r.text, r.cooking_time"

func scanRecipe(row pgx.Row) (database.Recipe, error) {
	var r database.Recipe
	err := row.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Image, &r.Text, &r.CookingTime)
	return r, err
}

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes AS r (author_id, name, image, text, cooking_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + recipeColumns

func (q *Queries) CreateRecipe(ctx context.Context, arg database.CreateRecipeParams) (database.Recipe, error) {
	row := q.db.QueryRow(ctx, createRecipe, arg.AuthorID, arg.Name, arg.Image, arg.Text, arg.CookingTime)
	r, err := scanRecipe(row)
	return r, translateError(err)
}

const updateRecipe = `-- name: UpdateRecipe :exec
UPDATE recipes SET name = $2, image = $3, text = $4, cooking_time = $5 WHERE id = $1`

func (q *Queries) UpdateRecipe(ctx context.Context, arg database.UpdateRecipeParams) error {
	tag, err := q.db.Exec(ctx, updateRecipe, arg.ID, arg.Name, arg.Image, arg.Text, arg.CookingTime)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNoRows
	}
	return nil
}

const getRecipe = `-- name: GetRecipe :one
SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (database.Recipe, error) {
	r, err := scanRecipe(q.db.QueryRow(ctx, getRecipe, id))
	return r, translateError(err)
}

const deleteRecipe = `-- name: DeleteRecipe :exec
DELETE FROM recipes WHERE id = $1`

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteRecipe, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNoRows
	}
	return nil
}

func (q *Queries) ListRecipes(ctx context.Context, arg database.ListRecipesParams) ([]database.Recipe, error) {
	where, args := arg.Filter.WhereClause(database.Dollar, 1)
	n := len(args)
	query := "SELECT " + recipeColumns + " FROM recipes r" + where +
		" ORDER BY r.id DESC LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	args = append(args, arg.Limit, arg.Offset)

	rows, err := q.db.Query(ctx, query, args...)
	return collect(rows, err, scanRecipe)
}

func (q *Queries) CountRecipes(ctx context.Context, filter database.RecipeFilter) (int64, error) {
	where, args := filter.WhereClause(database.Dollar, 1)
	var count int64
	err := q.db.QueryRow(ctx, "SELECT COUNT(*) FROM recipes r"+where, args...).Scan(&count)
	return count, translateError(err)
}

const listRecipesByAuthors = `-- name: ListRecipesByAuthors :many
SELECT id, author_id, name, image, text, cooking_time FROM (
    SELECT ` + recipeColumns + `,
        ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.id DESC) AS rn
    FROM recipes r
    WHERE r.author_id = ANY($1::bigint[])
) ranked
WHERE rn <= $2
ORDER BY author_id, id DESC`

func (q *Queries) ListRecipesByAuthors(
	ctx context.Context, arg database.ListRecipesByAuthorsParams,
) ([]database.Recipe, error) {
	rows, err := q.db.Query(ctx, listRecipesByAuthors, arg.AuthorIDs, arg.PerAuthorLimit)
	return collect(rows, err, scanRecipe)
}

const countRecipesByAuthors = `-- name: CountRecipesByAuthors :many
SELECT author_id, COUNT(*) FROM recipes WHERE author_id = ANY($1::bigint[]) GROUP BY author_id`

func (q *Queries) CountRecipesByAuthors(
	ctx context.Context, authorIDs []int64,
) ([]database.AuthorRecipeCount, error) {
	rows, err := q.db.Query(ctx, countRecipesByAuthors, authorIDs)
	return collect(rows, err, func(row pgx.Row) (database.AuthorRecipeCount, error) {
		var c database.AuthorRecipeCount
		err := row.Scan(&c.AuthorID, &c.Count)
		return c, err
	})
}

const setRecipeTags = `-- name: SetRecipeTags :exec
INSERT INTO recipe_tags (recipe_id, tag_id)
SELECT $1, unnest($2::bigint[])`

func (q *Queries) SetRecipeTags(ctx context.Context, arg database.SetRecipeTagsParams) error {
	_, err := q.db.Exec(ctx, setRecipeTags, arg.RecipeID, arg.TagIDs)
	return translateError(err)
}

const deleteRecipeTags = `-- name: DeleteRecipeTags :exec
DELETE FROM recipe_tags WHERE recipe_id = $1`

func (q *Queries) DeleteRecipeTags(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteRecipeTags, recipeID)
	return translateError(err)
}

const listRecipeTags = `-- name: ListRecipeTags :many
SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
WHERE rt.recipe_id = ANY($1::bigint[])
ORDER BY rt.recipe_id, t.id`

func (q *Queries) ListRecipeTags(ctx context.Context, recipeIDs []int64) ([]database.RecipeTag, error) {
	rows, err := q.db.Query(ctx, listRecipeTags, recipeIDs)
	return collect(rows, err, func(row pgx.Row) (database.RecipeTag, error) {
		var rt database.RecipeTag
		err := row.Scan(&rt.RecipeID, &rt.ID, &rt.Name, &rt.Color, &rt.Slug)
		return rt, err
	})
}

const createRecipeIngredients = `-- name: CreateRecipeIngredients :exec
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
SELECT $1, t.ingredient_id, t.amount
FROM unnest($2::bigint[], $3::integer[]) AS t (ingredient_id, amount)`

func (q *Queries) CreateRecipeIngredients(
	ctx context.Context, arg database.CreateRecipeIngredientsParams,
) error {
	ids := make([]int64, len(arg.Ingredients))
	amounts := make([]int32, len(arg.Ingredients))
	for i, ing := range arg.Ingredients {
		ids[i] = ing.IngredientID
		amounts[i] = ing.Amount
	}
	_, err := q.db.Exec(ctx, createRecipeIngredients, arg.RecipeID, ids, amounts)
	return translateError(err)
}

const deleteRecipeIngredients = `-- name: DeleteRecipeIngredients :exec
DELETE FROM recipe_ingredients WHERE recipe_id = $1`

func (q *Queries) DeleteRecipeIngredients(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteRecipeIngredients, recipeID)
	return translateError(err)
}

const listRecipeIngredients = `-- name: ListRecipeIngredients :many
SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
WHERE ri.recipe_id = ANY($1::bigint[])
ORDER BY ri.recipe_id, i.id`

func (q *Queries) ListRecipeIngredients(
	ctx context.Context, recipeIDs []int64,
) ([]database.RecipeIngredient, error) {
	rows, err := q.db.Query(ctx, listRecipeIngredients, recipeIDs)
	return collect(rows, err, func(row pgx.Row) (database.RecipeIngredient, error) {
		var ri database.RecipeIngredient
		err := row.Scan(&ri.RecipeID, &ri.IngredientID, &ri.Name, &ri.MeasurementUnit, &ri.Amount)
		return ri, err
	})
}
