package sqlite

import (
	"context"

	"github.com/matt-dz/foodgram/internal/database"
)

func scanID(row scanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

func (q *Queries) CreateRecipeRelation(ctx context.Context, arg database.RecipeRelationParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO `+arg.Relation.Table()+` (user_id, recipe_id) VALUES (?, ?)`, arg.UserID, arg.RecipeID)
	return translateError(err)
}

func (q *Queries) DeleteRecipeRelation(ctx context.Context, arg database.RecipeRelationParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM `+arg.Relation.Table()+` WHERE user_id = ? AND recipe_id = ?`, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, translateError(err)
	}
	return rowsAffected(res)
}

func (q *Queries) ListRelatedRecipeIDs(
	ctx context.Context, arg database.ListRelatedRecipeIDsParams,
) ([]int64, error) {
	if len(arg.RecipeIDs) == 0 {
		return []int64{}, nil
	}
	args := append([]any{arg.UserID}, int64Args(arg.RecipeIDs)...)
	rows, err := q.db.QueryContext(ctx,
		`SELECT recipe_id FROM `+arg.Relation.Table()+
			` WHERE user_id = ? AND recipe_id IN (`+inList(len(arg.RecipeIDs))+`)`, args...)
	return collect(rows, err, scanID)
}

func (q *Queries) ListShoppingCartIngredients(ctx context.Context, userID int64) ([]database.CartIngredient, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_cart sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = ?`, userID)
	return collect(rows, err, func(row scanner) (database.CartIngredient, error) {
		var ci database.CartIngredient
		err := row.Scan(&ci.Name, &ci.MeasurementUnit, &ci.Amount)
		return ci, err
	})
}

func (q *Queries) CreateSubscription(ctx context.Context, arg database.SubscriptionParams) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, author_id) VALUES (?, ?)`, arg.UserID, arg.AuthorID)
	return translateError(err)
}

func (q *Queries) DeleteSubscription(ctx context.Context, arg database.SubscriptionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE user_id = ? AND author_id = ?`, arg.UserID, arg.AuthorID)
	if err != nil {
		return 0, translateError(err)
	}
	return rowsAffected(res)
}

func (q *Queries) ListSubscribedAuthors(
	ctx context.Context, arg database.ListSubscribedAuthorsParams,
) ([]database.User, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.role
		FROM subscriptions s JOIN users u ON u.id = s.author_id
		WHERE s.user_id = ?
		ORDER BY u.id
		LIMIT ? OFFSET ?`, arg.UserID, arg.Limit, arg.Offset)
	return collect(rows, err, scanUser)
}

func (q *Queries) CountSubscribedAuthors(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions WHERE user_id = ?`, userID).Scan(&count)
	return count, translateError(err)
}

func (q *Queries) ListSubscribedAmong(ctx context.Context, arg database.ListSubscribedAmongParams) ([]int64, error) {
	if len(arg.AuthorIDs) == 0 {
		return []int64{}, nil
	}
	args := append([]any{arg.UserID}, int64Args(arg.AuthorIDs)...)
	rows, err := q.db.QueryContext(ctx,
		`SELECT author_id FROM subscriptions WHERE user_id = ? AND author_id IN (`+inList(len(arg.AuthorIDs))+`)`,
		args...)
	return collect(rows, err, scanID)
}
