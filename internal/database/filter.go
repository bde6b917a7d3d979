package database

import (
	"strconv"
	"strings"
)

// RecipeFilter restricts recipe listings. Nil pointers and empty slices do
// not restrict anything.
type RecipeFilter struct {
	AuthorID    *int64
	TagSlugs    []string
	FavoritedBy *int64
	InCartOf    *int64
}

// Placeholder renders the n-th (1-based) bind parameter of a statement.
type Placeholder func(n int) string

// Dollar renders postgres style parameters.
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders sqlite style parameters.
func Question(int) string { return "?" }

// WhereClause renders the filter against a recipes table aliased as r. The
// returned clause is empty or starts with " WHERE ". Parameters are numbered
// from start.
func (f RecipeFilter) WhereClause(ph Placeholder, start int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return ph(start + len(args) - 1)
	}

	if f.AuthorID != nil {
		conds = append(conds, "r.author_id = "+next(*f.AuthorID))
	}
	if len(f.TagSlugs) > 0 {
		slugs := make([]string, 0, len(f.TagSlugs))
		for _, s := range f.TagSlugs {
			slugs = append(slugs, next(s))
		}
		conds = append(conds,
			"EXISTS (SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id"+
				" WHERE rt.recipe_id = r.id AND t.slug IN ("+strings.Join(slugs, ", ")+"))")
	}
	if f.FavoritedBy != nil {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM favorites fv WHERE fv.recipe_id = r.id AND fv.user_id = "+next(*f.FavoritedBy)+")")
	}
	if f.InCartOf != nil {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = "+next(*f.InCartOf)+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
