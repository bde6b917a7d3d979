package database

import "context"

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=database

type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error)
	ListUsersByIDs(ctx context.Context, ids []int64) ([]User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error
	GetAdminCount(ctx context.Context) (int64, error)

	CreateTag(ctx context.Context, arg CreateTagParams) (Tag, error)
	GetTag(ctx context.Context, id int64) (Tag, error)
	ListTags(ctx context.Context) ([]Tag, error)
	ListTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)

	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (Ingredient, error)
	SearchIngredients(ctx context.Context, prefix string) ([]Ingredient, error)
	ListIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)

	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) error
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	ListRecipes(ctx context.Context, arg ListRecipesParams) ([]Recipe, error)
	CountRecipes(ctx context.Context, filter RecipeFilter) (int64, error)
	ListRecipesByAuthors(ctx context.Context, arg ListRecipesByAuthorsParams) ([]Recipe, error)
	CountRecipesByAuthors(ctx context.Context, authorIDs []int64) ([]AuthorRecipeCount, error)

	SetRecipeTags(ctx context.Context, arg SetRecipeTagsParams) error
	DeleteRecipeTags(ctx context.Context, recipeID int64) error
	ListRecipeTags(ctx context.Context, recipeIDs []int64) ([]RecipeTag, error)
	CreateRecipeIngredients(ctx context.Context, arg CreateRecipeIngredientsParams) error
	DeleteRecipeIngredients(ctx context.Context, recipeID int64) error
	ListRecipeIngredients(ctx context.Context, recipeIDs []int64) ([]RecipeIngredient, error)

	CreateRecipeRelation(ctx context.Context, arg RecipeRelationParams) error
	DeleteRecipeRelation(ctx context.Context, arg RecipeRelationParams) (int64, error)
	ListRelatedRecipeIDs(ctx context.Context, arg ListRelatedRecipeIDsParams) ([]int64, error)
	ListShoppingCartIngredients(ctx context.Context, userID int64) ([]CartIngredient, error)

	CreateSubscription(ctx context.Context, arg SubscriptionParams) error
	DeleteSubscription(ctx context.Context, arg SubscriptionParams) (int64, error)
	ListSubscribedAuthors(ctx context.Context, arg ListSubscribedAuthorsParams) ([]User, error)
	CountSubscribedAuthors(ctx context.Context, userID int64) (int64, error)
	ListSubscribedAmong(ctx context.Context, arg ListSubscribedAmongParams) ([]int64, error)
}
