// Package shoppinglist sums the ingredients of the recipes in a user's
// shopping cart and renders the downloadable report.
package shoppinglist

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/matt-dz/foodgram/internal/database"
)

const (
	Header      = "Список покупок:\n"
	ContentType = "text/plain; charset=utf-8"
	Filename    = "shopping_cart.txt"
)

// Line is the total amount of one ingredient in one measurement unit.
type Line struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int64  `json:"total"`
}

// Aggregate groups items by name and unit and sums their amounts. Lines are
// ordered by name, then unit.
func Aggregate(items []database.CartIngredient) []Line {
	type key struct{ name, unit string }

	totals := make(map[key]int64)
	for _, it := range items {
		totals[key{it.Name, it.MeasurementUnit}] += int64(it.Amount)
	}

	lines := make([]Line, 0, len(totals))
	for k, total := range totals {
		lines = append(lines, Line{Name: k.name, MeasurementUnit: k.unit, Total: total})
	}
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.MeasurementUnit, b.MeasurementUnit))
	})
	return lines
}

// Build aggregates the shopping cart of userID.
func Build(ctx context.Context, q database.Querier, userID int64) ([]Line, error) {
	items, err := q.ListShoppingCartIngredients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cart ingredients: %w", err)
	}
	return Aggregate(items), nil
}

func Render(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%s - %d, %s\n", l.Name, l.Total, l.MeasurementUnit); err != nil {
			return err
		}
	}
	return bw.Flush()
}
