package database

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type Recipe struct {
	ID          int64  `json:"id"`
	AuthorID    int64  `json:"author_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Text        string `json:"text"`
	CookingTime int32  `json:"cooking_time"`
}

// RecipeIngredient is a recipe_ingredients row joined with its ingredient.
type RecipeIngredient struct {
	RecipeID        int64  `json:"recipe_id"`
	IngredientID    int64  `json:"ingredient_id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

type RecipeTag struct {
	RecipeID int64 `json:"recipe_id"`
	Tag
}

// CartIngredient is one ingredient line of one recipe in a user's shopping cart.
type CartIngredient struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

type AuthorRecipeCount struct {
	AuthorID int64 `json:"author_id"`
	Count    int64 `json:"count"`
}

// Relation names a user-to-recipe membership table.
type Relation int

const (
	RelationFavorite Relation = iota
	RelationShoppingCart
)

func (r Relation) Table() string {
	switch r {
	case RelationShoppingCart:
		return "shopping_cart"
	default:
		return "favorites"
	}
}

func (r Relation) String() string {
	switch r {
	case RelationShoppingCart:
		return "shopping_cart"
	default:
		return "favorite"
	}
}

type IngredientAmount struct {
	IngredientID int64
	Amount       int32
}

type CreateUserParams struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
}

type UpdateUserPasswordParams struct {
	ID           int64
	PasswordHash string
}

type ListUsersParams struct {
	Limit  int32
	Offset int32
}

type CreateTagParams struct {
	Name  string
	Color string
	Slug  string
}

type CreateIngredientParams struct {
	Name            string
	MeasurementUnit string
}

type CreateRecipeParams struct {
	AuthorID    int64
	Name        string
	Image       string
	Text        string
	CookingTime int32
}

type UpdateRecipeParams struct {
	ID          int64
	Name        string
	Image       string
	Text        string
	CookingTime int32
}

type ListRecipesParams struct {
	Filter RecipeFilter
	Limit  int32
	Offset int32
}

type ListRecipesByAuthorsParams struct {
	AuthorIDs      []int64
	PerAuthorLimit int32
}

type SetRecipeTagsParams struct {
	RecipeID int64
	TagIDs   []int64
}

type CreateRecipeIngredientsParams struct {
	RecipeID    int64
	Ingredients []IngredientAmount
}

type RecipeRelationParams struct {
	Relation Relation
	UserID   int64
	RecipeID int64
}

type ListRelatedRecipeIDsParams struct {
	Relation  Relation
	UserID    int64
	RecipeIDs []int64
}

type SubscriptionParams struct {
	UserID   int64
	AuthorID int64
}

type ListSubscribedAuthorsParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

type ListSubscribedAmongParams struct {
	UserID    int64
	AuthorIDs []int64
}
