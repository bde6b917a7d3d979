// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/metrics"
)

type Env struct {
	Logger    *slog.Logger
	Database  *database.Database
	FileStore filestore.FileStore
	Config    *config.Config
	Metrics   *metrics.Metrics
}

type envKeyType struct{}

var envKey envKeyType

func New(
	logger *slog.Logger,
	db *database.Database,
	files filestore.FileStore,
	conf *config.Config,
	m *metrics.Metrics,
) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}
	if conf == nil {
		conf = &config.Config{}
	}

	return &Env{
		Logger:    logger,
		Database:  db,
		FileStore: files,
		Config:    conf,
		Metrics:   m,
	}
}

func Null() *Env {
	return New(nil, nil, nil, nil, nil)
}

// AppSecret returns the signing secret and its version.
func (e *Env) AppSecret() ([]byte, string) {
	version := e.Config.AppSecret.Version
	if version == "" {
		version = jwt.DefaultKID
	}
	if e.Config.AppSecret.Value == nil {
		return nil, version
	}
	return []byte(*e.Config.AppSecret.Value), version
}

func (e *Env) IsProd() bool {
	return e.Config.Env == config.EnvProd
}

// WithCtx stores e in ctx.
func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx returns the Env stored in ctx, or a null Env when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok && e != nil {
		return e
	}
	return Null()
}
