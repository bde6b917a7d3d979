package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/foodgram/internal/database"
)

func scanTag(row pgx.Row) (database.Tag, error) {
	var t database.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	return t, err
}

func scanIngredient(row pgx.Row) (database.Ingredient, error) {
	var i database.Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	return i, err
}

const createTag = `-- name: CreateTag :one
INSERT INTO tags (name, color, slug) VALUES ($1, $2, $3)
RETURNING id, name, color, slug`

func (q *Queries) CreateTag(ctx context.Context, arg database.CreateTagParams) (database.Tag, error) {
	t, err := scanTag(q.db.QueryRow(ctx, createTag, arg.Name, arg.Color, arg.Slug))
	return t, translateError(err)
}

const getTag = `-- name: GetTag :one
SELECT id, name, color, slug FROM tags WHERE id = $1`

func (q *Queries) GetTag(ctx context.Context, id int64) (database.Tag, error) {
	t, err := scanTag(q.db.QueryRow(ctx, getTag, id))
	return t, translateError(err)
}

const listTags = `-- name: ListTags :many
SELECT id, name, color, slug FROM tags ORDER BY id`

func (q *Queries) ListTags(ctx context.Context) ([]database.Tag, error) {
	rows, err := q.db.Query(ctx, listTags)
	return collect(rows, err, scanTag)
}

const listTagsByIDs = `-- name: ListTagsByIDs :many
SELECT id, name, color, slug FROM tags WHERE id = ANY($1::bigint[]) ORDER BY id`

func (q *Queries) ListTagsByIDs(ctx context.Context, ids []int64) ([]database.Tag, error) {
	rows, err := q.db.Query(ctx, listTagsByIDs, ids)
	return collect(rows, err, scanTag)
}

const createIngredient = `-- name: CreateIngredient :one
INSERT INTO ingredients (name, measurement_unit) VALUES ($1, $2)
RETURNING id, name, measurement_unit`

func (q *Queries) CreateIngredient(
	ctx context.Context, arg database.CreateIngredientParams,
) (database.Ingredient, error) {
	i, err := scanIngredient(q.db.QueryRow(ctx, createIngredient, arg.Name, arg.MeasurementUnit))
	return i, translateError(err)
}

const getIngredient = `-- name: GetIngredient :one
SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

func (q *Queries) GetIngredient(ctx context.Context, id int64) (database.Ingredient, error) {
	i, err := scanIngredient(q.db.QueryRow(ctx, getIngredient, id))
	return i, translateError(err)
}

const searchIngredients = `-- name: SearchIngredients :many
SELECT id, name, measurement_unit FROM ingredients
WHERE name ILIKE $1 ESCAPE '\'
ORDER BY name, id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchIngredients returns ingredients whose name starts with prefix,
// ignoring case. An empty prefix matches every ingredient.
func (q *Queries) SearchIngredients(ctx context.Context, prefix string) ([]database.Ingredient, error) {
	rows, err := q.db.Query(ctx, searchIngredients, likeEscaper.Replace(prefix)+"%")
	return collect(rows, err, scanIngredient)
}

const listIngredientsByIDs = `-- name: ListIngredientsByIDs :many
SELECT id, name, measurement_unit FROM ingredients WHERE id = ANY($1::bigint[]) ORDER BY id`

func (q *Queries) ListIngredientsByIDs(ctx context.Context, ids []int64) ([]database.Ingredient, error) {
	rows, err := q.db.Query(ctx, listIngredientsByIDs, ids)
	return collect(rows, err, scanIngredient)
}
