package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/foodgram/internal/database"
)

func scanID(row pgx.Row) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

func (q *Queries) CreateRecipeRelation(ctx context.Context, arg database.RecipeRelationParams) error {
	query := "INSERT INTO " + arg.Relation.Table() + " (user_id, recipe_id) VALUES ($1, $2)"
	_, err := q.db.Exec(ctx, query, arg.UserID, arg.RecipeID)
	return translateError(err)
}

func (q *Queries) DeleteRecipeRelation(ctx context.Context, arg database.RecipeRelationParams) (int64, error) {
	query := "DELETE FROM " + arg.Relation.Table() + " WHERE user_id = $1 AND recipe_id = $2"
	tag, err := q.db.Exec(ctx, query, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) ListRelatedRecipeIDs(
	ctx context.Context, arg database.ListRelatedRecipeIDsParams,
) ([]int64, error) {
	query := "SELECT recipe_id FROM " + arg.Relation.Table() +
		" WHERE user_id = $1 AND recipe_id = ANY($2::bigint[])"
	rows, err := q.db.Query(ctx, query, arg.UserID, arg.RecipeIDs)
	return collect(rows, err, scanID)
}

const listShoppingCartIngredients = `-- name: ListShoppingCartIngredients :many
SELECT i.name, i.measurement_unit, ri.amount
FROM shopping_cart sc
JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE sc.user_id = $1`

func (q *Queries) ListShoppingCartIngredients(ctx context.Context, userID int64) ([]database.CartIngredient, error) {
	rows, err := q.db.Query(ctx, listShoppingCartIngredients, userID)
	return collect(rows, err, func(row pgx.Row) (database.CartIngredient, error) {
		var ci database.CartIngredient
		err := row.Scan(&ci.Name, &ci.MeasurementUnit, &ci.Amount)
		return ci, err
	})
}

const createSubscription = `-- name: CreateSubscription :exec
INSERT INTO subscriptions (user_id, author_id) VALUES ($1, $2)`

func (q *Queries) CreateSubscription(ctx context.Context, arg database.SubscriptionParams) error {
	_, err := q.db.Exec(ctx, createSubscription, arg.UserID, arg.AuthorID)
	return translateError(err)
}

const deleteSubscription = `-- name: DeleteSubscription :execrows
DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`

func (q *Queries) DeleteSubscription(ctx context.Context, arg database.SubscriptionParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteSubscription, arg.UserID, arg.AuthorID)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

const listSubscribedAuthors = `-- name: ListSubscribedAuthors :many
SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.role
FROM subscriptions s JOIN users u ON u.id = s.author_id
WHERE s.user_id = $1
ORDER BY u.id
LIMIT $2 OFFSET $3`

func (q *Queries) ListSubscribedAuthors(
	ctx context.Context, arg database.ListSubscribedAuthorsParams,
) ([]database.User, error) {
	rows, err := q.db.Query(ctx, listSubscribedAuthors, arg.UserID, arg.Limit, arg.Offset)
	return collect(rows, err, scanUser)
}

const countSubscribedAuthors = `-- name: CountSubscribedAuthors :one
SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`

func (q *Queries) CountSubscribedAuthors(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countSubscribedAuthors, userID).Scan(&count)
	return count, translateError(err)
}

const listSubscribedAmong = `-- name: ListSubscribedAmong :many
SELECT author_id FROM subscriptions WHERE user_id = $1 AND author_id = ANY($2::bigint[])`

func (q *Queries) ListSubscribedAmong(ctx context.Context, arg database.ListSubscribedAmongParams) ([]int64, error) {
	rows, err := q.db.Query(ctx, listSubscribedAmong, arg.UserID, arg.AuthorIDs)
	return collect(rows, err, scanID)
}
