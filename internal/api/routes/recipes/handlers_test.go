package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// newRequest builds a request carrying the env, request id, viewer and the
// chi id parameter, as the router would.
func newRequest(t *testing.T, method, id string, mockDB *database.MockQuerier, v viewer.Viewer) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, "/api/recipes/"+id+"/", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = requestid.InjectRequestID(ctx, 12345)
	ctx = viewer.WithCtx(ctx, v)
	ctx = env.WithCtx(ctx, env.New(nil, &database.Database{Querier: mockDB},
		filestore.NewLocal(t.TempDir(), filestore.DefaultURLPrefix, "http://localhost"), nil, nil))
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHandleGetRecipe_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)

	tests := []struct {
		name       string
		id         string
		setup      func()
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:       "non numeric id",
			id:         "abc",
			setup:      func() {},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
		{
			name: "missing recipe",
			id:   "7",
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(database.Recipe{}, database.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
		{
			name: "database error",
			id:   "7",
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(database.Recipe{}, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiError.InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			HandleGetRecipe(rec, newRequest(t, http.MethodGet, tt.id, mockDB, viewer.Anonymous{}))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if body := decodeError(t, rec); body.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", body.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleCreateRecipe_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)

	r := newRequest(t, http.MethodPost, "", mockDB, viewer.Authenticated{ID: 1, Role: role.RoleUser})
	r.Body = io.NopCloser(strings.NewReader(
		`{"image":"data:image/png;base64,` + strings.Repeat("A", int(maxRecipeBodySize)) + `"}`))

	rec := httptest.NewRecorder()
	HandleCreateRecipe(rec, r)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
	if body := decodeError(t, rec); body.Code != apiError.RequestTooLarge {
		t.Errorf("code = %s, want %s", body.Code, apiError.RequestTooLarge)
	}
}

func TestHandleUpdateRecipe_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(database.Recipe{ID: 3, AuthorID: 1}, nil)

	rec := httptest.NewRecorder()
	HandleUpdateRecipe(rec, newRequest(t, http.MethodPatch, "3", mockDB,
		viewer.Authenticated{ID: 2, Role: role.RoleUser}))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if body := decodeError(t, rec); body.Code != apiError.RecipeNotOwned {
		t.Errorf("code = %s, want %s", body.Code, apiError.RecipeNotOwned)
	}
}

func TestHandleDeleteRecipe_AdminMayDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	gomock.InOrder(
		mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(database.Recipe{ID: 3, AuthorID: 1}, nil),
		mockDB.EXPECT().GetRecipe(gomock.Any(), int64(3)).Return(database.Recipe{ID: 3, AuthorID: 1}, nil),
		mockDB.EXPECT().DeleteRecipe(gomock.Any(), int64(3)).Return(nil),
	)

	rec := httptest.NewRecorder()
	HandleDeleteRecipe(rec, newRequest(t, http.MethodDelete, "3", mockDB,
		viewer.Authenticated{ID: 99, Role: role.RoleAdmin}))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestHandleMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	reader := viewer.Authenticated{ID: 2, Role: role.RoleUser}
	soup := database.Recipe{ID: 5, AuthorID: 1, Name: "Soup", Image: "recipes/soup.png", CookingTime: 30}

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		method      string
		setup       func()
		wantStatus  int
		wantMessage string
	}{
		{
			name:    "favorite added",
			handler: HandleAddFavorite,
			method:  http.MethodPost,
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(soup, nil)
				mockDB.EXPECT().CreateRecipeRelation(gomock.Any(), database.RecipeRelationParams{
					Relation: database.RelationFavorite, UserID: 2, RecipeID: 5,
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "favorite twice",
			handler: HandleAddFavorite,
			method:  http.MethodPost,
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(soup, nil)
				mockDB.EXPECT().CreateRecipeRelation(gomock.Any(), gomock.Any()).Return(database.ErrUniqueViolation)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Рецепт уже добавлен в избранное",
		},
		{
			name:    "cart removal of absent recipe",
			handler: HandleRemoveFromCart,
			method:  http.MethodDelete,
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(soup, nil)
				mockDB.EXPECT().DeleteRecipeRelation(gomock.Any(), database.RecipeRelationParams{
					Relation: database.RelationShoppingCart, UserID: 2, RecipeID: 5,
				}).Return(int64(0), nil)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "У вас нет этого рецепта в списке покупок",
		},
		{
			name:    "cart removal",
			handler: HandleRemoveFromCart,
			method:  http.MethodDelete,
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(soup, nil)
				mockDB.EXPECT().DeleteRecipeRelation(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:    "favorite of missing recipe",
			handler: HandleAddFavorite,
			method:  http.MethodPost,
			setup: func() {
				mockDB.EXPECT().GetRecipe(gomock.Any(), int64(5)).Return(database.Recipe{}, database.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			tt.handler(rec, newRequest(t, tt.method, "5", mockDB, reader))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantMessage != "" {
				if body := decodeError(t, rec); body.Message != tt.wantMessage {
					t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
				}
			}
		})
	}
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	mockDB.EXPECT().ListShoppingCartIngredients(gomock.Any(), int64(2)).Return([]database.CartIngredient{
		{Name: "Мука", MeasurementUnit: "г", Amount: 200},
		{Name: "Яйцо", MeasurementUnit: "шт", Amount: 2},
		{Name: "Мука", MeasurementUnit: "г", Amount: 150},
	}, nil)

	rec := httptest.NewRecorder()
	HandleDownloadShoppingCart(rec, newRequest(t, http.MethodGet, "", mockDB,
		viewer.Authenticated{ID: 2, Role: role.RoleUser}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="shopping_cart.txt"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	want := "Список покупок:\nМука - 350, г\nЯйцо - 2, шт\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
