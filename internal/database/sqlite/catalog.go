package sqlite

import (
	"context"
	"strings"

	"github.com/matt-dz/foodgram/internal/database"
	"golang.org/x/text/cases"
)

func scanTag(row scanner) (database.Tag, error) {
	var t database.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	return t, err
}

func scanIngredient(row scanner) (database.Ingredient, error) {
	var i database.Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	return i, err
}

func (q *Queries) CreateTag(ctx context.Context, arg database.CreateTagParams) (database.Tag, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO tags (name, color, slug) VALUES (?, ?, ?) RETURNING id, name, color, slug`,
		arg.Name, arg.Color, arg.Slug)
	t, err := scanTag(row)
	return t, translateError(err)
}

func (q *Queries) GetTag(ctx context.Context, id int64) (database.Tag, error) {
	t, err := scanTag(q.db.QueryRowContext(ctx, `SELECT id, name, color, slug FROM tags WHERE id = ?`, id))
	return t, translateError(err)
}

func (q *Queries) ListTags(ctx context.Context) ([]database.Tag, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, color, slug FROM tags ORDER BY id`)
	return collect(rows, err, scanTag)
}

func (q *Queries) ListTagsByIDs(ctx context.Context, ids []int64) ([]database.Tag, error) {
	if len(ids) == 0 {
		return []database.Tag{}, nil
	}
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, color, slug FROM tags WHERE id IN (`+inList(len(ids))+`) ORDER BY id`,
		int64Args(ids)...)
	return collect(rows, err, scanTag)
}

func (q *Queries) CreateIngredient(
	ctx context.Context, arg database.CreateIngredientParams,
) (database.Ingredient, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO ingredients (name, measurement_unit) VALUES (?, ?) RETURNING id, name, measurement_unit`,
		arg.Name, arg.MeasurementUnit)
	i, err := scanIngredient(row)
	return i, translateError(err)
}

func (q *Queries) GetIngredient(ctx context.Context, id int64) (database.Ingredient, error) {
	row := q.db.QueryRowContext(ctx, `SELECT id, name, measurement_unit FROM ingredients WHERE id = ?`, id)
	i, err := scanIngredient(row)
	return i, translateError(err)
}

// SearchIngredients matches prefix against ingredient names with full
// Unicode case folding. SQLite's LIKE and lower() only fold ASCII, so the
// comparison happens here.
func (q *Queries) SearchIngredients(ctx context.Context, prefix string) ([]database.Ingredient, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, name, measurement_unit FROM ingredients ORDER BY name, id`)
	all, err := collect(rows, err, scanIngredient)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return all, nil
	}

	fold := cases.Fold()
	want := fold.String(prefix)
	matched := []database.Ingredient{}
	for _, ing := range all {
		if strings.HasPrefix(fold.String(ing.Name), want) {
			matched = append(matched, ing)
		}
	}
	return matched, nil
}

func (q *Queries) ListIngredientsByIDs(ctx context.Context, ids []int64) ([]database.Ingredient, error) {
	if len(ids) == 0 {
		return []database.Ingredient{}, nil
	}
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, measurement_unit FROM ingredients WHERE id IN (`+inList(len(ids))+`) ORDER BY id`,
		int64Args(ids)...)
	return collect(rows, err, scanIngredient)
}
