package shoppinglist

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
	"go.uber.org/mock/gomock"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		items []database.CartIngredient
		want  []Line
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  []Line{},
		},
		{
			name: "shared ingredient is summed",
			items: []database.CartIngredient{
				{Name: "Flour", MeasurementUnit: "g", Amount: 100},
				{Name: "Eggs", MeasurementUnit: "pcs", Amount: 2},
				{Name: "Flour", MeasurementUnit: "g", Amount: 250},
				{Name: "Sugar", MeasurementUnit: "g", Amount: 50},
			},
			want: []Line{
				{Name: "Eggs", MeasurementUnit: "pcs", Total: 2},
				{Name: "Flour", MeasurementUnit: "g", Total: 350},
				{Name: "Sugar", MeasurementUnit: "g", Total: 50},
			},
		},
		{
			name: "same name different unit stays apart",
			items: []database.CartIngredient{
				{Name: "Milk", MeasurementUnit: "ml", Amount: 200},
				{Name: "Milk", MeasurementUnit: "cup", Amount: 1},
				{Name: "Milk", MeasurementUnit: "ml", Amount: 300},
			},
			want: []Line{
				{Name: "Milk", MeasurementUnit: "cup", Total: 1},
				{Name: "Milk", MeasurementUnit: "ml", Total: 500},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  string
	}{
		{name: "header only", lines: nil, want: "Список покупок:\n"},
		{
			name: "lines",
			lines: []Line{
				{Name: "Flour", MeasurementUnit: "g", Total: 350},
				{Name: "яйца", MeasurementUnit: "шт", Total: 3},
			},
			want: "Список покупок:\nFlour - 350, g\nяйца - 3, шт\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Render(&sb, tt.lines); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("Render() = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().ListShoppingCartIngredients(gomock.Any(), int64(4)).Return([]database.CartIngredient{
		{Name: "Flour", MeasurementUnit: "g", Amount: 100},
		{Name: "Flour", MeasurementUnit: "g", Amount: 250},
	}, nil)

	got, err := Build(context.Background(), mockDB, 4)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []Line{{Name: "Flour", MeasurementUnit: "g", Total: 350}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuild_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := database.NewMockQuerier(ctrl)
	boom := errors.New("boom")
	mockDB.EXPECT().ListShoppingCartIngredients(gomock.Any(), int64(4)).Return(nil, boom)

	if _, err := Build(context.Background(), mockDB, 4); !errors.Is(err, boom) {
		t.Errorf("Build() error = %v, want %v", err, boom)
	}
}
