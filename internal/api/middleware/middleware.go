// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	fgJwt "github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
	"github.com/oklog/ulid/v2"
)

const corsMaxAge = 86400

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors allows the configured origins. With none configured every origin
// is allowed outside of production.
func AddCors(e *env.Env) func(http.Handler) http.Handler {
	origins := e.Config.Server.AllowedOrigins
	if len(origins) == 0 && !e.IsProd() {
		origins = []string{"https://*", "http://*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// Recover turns panics into 500 responses.
func Recover(next http.Handler) http.Handler {
	return chiMiddleware.Recoverer(next)
}

// Authenticate resolves the viewer of every request. A request without a
// token is anonymous; a request with an unusable token is rejected.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.FromCtx(ctx)

		rawToken, err := token.FromRequest(r)
		if errors.Is(err, token.ErrNoToken) {
			next.ServeHTTP(w, r.WithContext(viewer.WithCtx(ctx, viewer.Anonymous{})))
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "malformed authorization header", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		secret, version := env.AppSecret()
		if len(secret) == 0 {
			env.Logger.ErrorContext(ctx, "app secret not configured")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		accessJwt, err := fgJwt.ValidateJWT(rawToken, version, secret)
		if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.ErrorContext(ctx, "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		userID, roleClaim, err := fgJwt.Subject(accessJwt)
		if err != nil {
			env.Logger.ErrorContext(ctx, "invalid access token claims", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))
		ctx = viewer.WithCtx(ctx, viewer.Authenticated{ID: userID, Role: role.ToRole(roleClaim)})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects viewers that are anonymous or below requiredRole.
func RequireRole(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			env := env.EnvFromCtx(ctx)
			requestID := requestid.FromCtx(ctx)

			v, ok := viewer.FromCtx(ctx).(viewer.Authenticated)
			if !ok {
				env.Logger.DebugContext(ctx, "anonymous viewer on protected route")
				_ = apiError.EncodeError(w, apiError.MissingCredentials,
					"Учетные данные не были предоставлены.", requestID)
				return
			}
			if !v.Role.AtLeast(requiredRole) {
				env.Logger.ErrorContext(ctx, "user does not have required role",
					slog.String("user-role", v.Role.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions,
					"У вас недостаточно прав для выполнения данного действия.", requestID)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var (
	RequireUser  = RequireRole(role.RoleUser)
	RequireAdmin = RequireRole(role.RoleAdmin)
)

// Instrument records request metrics labelled with the matched chi route
// pattern.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveRequest(r.Method, route, status, time.Since(start))
		})
	}
}
