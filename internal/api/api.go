// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/matt-dz/foodgram/docs"
	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/api/routes/auth"
	"github.com/matt-dz/foodgram/internal/api/routes/ingredients"
	"github.com/matt-dz/foodgram/internal/api/routes/ping"
	"github.com/matt-dz/foodgram/internal/api/routes/recipes"
	"github.com/matt-dz/foodgram/internal/api/routes/tags"
	"github.com/matt-dz/foodgram/internal/api/routes/users"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addDocs(r chi.Router) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL("/api/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

// addMedia serves locally stored images. Images in a bucket are served by
// the bucket itself.
func addMedia(r chi.Router, files filestore.FileStore) {
	local, ok := files.(*filestore.Local)
	if !ok {
		return
	}
	prefix := local.URLPrefix()
	r.Handle(prefix+"/*", local.FileServer().Handler(prefix))
}

func addRoutes(router chi.Router) {
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.Post("/login", auth.HandleLogin)
			r.With(middleware.RequireUser).Post("/logout", auth.HandleLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleListUsers)
			r.Post("/", users.HandleCreateUser)
			r.Get("/{id}", users.HandleGetUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)

				r.Get("/me", users.HandleMe)
				r.Post("/set_password", users.HandleSetPassword)
				r.Get("/subscriptions", users.HandleListSubscriptions)
				r.Post("/{id}/subscribe", users.HandleSubscribe)
				r.Delete("/{id}/subscribe", users.HandleUnsubscribe)
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tags.HandleListTags)
			r.Get("/{id}", tags.HandleGetTag)
			r.With(middleware.RequireAdmin).Post("/", tags.HandleCreateTag)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleListIngredients)
			r.Get("/{id}", ingredients.HandleGetIngredient)
			r.With(middleware.RequireAdmin).Post("/", ingredients.HandleCreateIngredient)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)
			r.Get("/{id}", recipes.HandleGetRecipe)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)

				r.Post("/", recipes.HandleCreateRecipe)
				r.Patch("/{id}", recipes.HandleUpdateRecipe)
				r.Delete("/{id}", recipes.HandleDeleteRecipe)
				r.Post("/{id}/favorite", recipes.HandleAddFavorite)
				r.Delete("/{id}/favorite", recipes.HandleRemoveFavorite)
				r.Post("/{id}/shopping_cart", recipes.HandleAddToCart)
				r.Delete("/{id}/shopping_cart", recipes.HandleRemoveFromCart)
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
			})
		})
	})
}

// NewRouter builds the full handler tree. Routes answer with and without a
// trailing slash.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.Recover)
	router.Use(middleware.Instrument(env.Metrics))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors(env))
	router.Use(chiMiddleware.StripSlashes)

	addRoutes(router)
	addDocs(router)
	addMedia(router, env.FileStore)
	router.Handle("/metrics", env.Metrics.Handler())

	return router
}

// Start godoc
//
//	@title						Foodgram API
//	@version					1.0
//	@description				API Server for the Foodgram recipe sharing application.
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				"Token <jwt>" or "Bearer <jwt>"
//
//	@BasePath					/
func Start(ctx context.Context, env *env.Env) error {
	server := &http.Server{
		Addr:              env.Config.Server.Address,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at %s", server.Addr))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at %s/api/swagger/index.html", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		env.Logger.Error("graceful shutdown failed", slog.Any("error", err))
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
