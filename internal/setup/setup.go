// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/database/postgres"
	"github.com/matt-dz/foodgram/internal/database/sqlite"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/password"
)

const dataDirPerms = 0o750

// Database opens the configured backend and applies the schema.
func Database(ctx context.Context, conf config.Database, logger *slog.Logger) (*database.Database, error) {
	var backend database.Backend
	switch conf.Driver {
	case config.DatabaseDriverPostgres:
		store, err := postgres.Open(ctx, conf.DSN())
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		backend = store
	case config.DatabaseDriverSQLite:
		if err := os.MkdirAll(filepath.Dir(conf.Path), dataDirPerms); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		store, err := sqlite.Open(conf.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		backend = store
	default:
		return nil, NewUnsupportedDriverError("database", conf.Driver)
	}

	db := database.New(backend)
	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

// FileStore builds the configured image store. hostOrigin prefixes the URLs
// of locally stored images.
func FileStore(ctx context.Context, conf config.FileStore, hostOrigin string) (filestore.FileStore, error) {
	switch conf.Driver {
	case config.FileStoreDriverLocal:
		volume, err := filepath.Abs(conf.Volume)
		if err != nil {
			return nil, fmt.Errorf("creating fileserver path: %w", err)
		}
		if err := os.MkdirAll(volume, dataDirPerms); err != nil {
			return nil, fmt.Errorf("creating fileserver volume: %w", err)
		}
		return filestore.NewLocal(volume, conf.URLPrefix, hostOrigin), nil
	case config.FileStoreDriverS3:
		store, err := filestore.NewS3(filestore.S3Config{
			Endpoint:        conf.S3.Endpoint,
			Region:          conf.S3.Region,
			Bucket:          conf.S3.Bucket,
			AccessKeyID:     conf.S3.AccessKeyID,
			SecretAccessKey: conf.S3.SecretAccessKey,
			UseSSL:          conf.S3.UseSSL,
			PublicURL:       conf.S3.PublicURL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.CheckBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, NewUnsupportedDriverError("filestore", conf.Driver)
	}
}

// Admin creates the configured administrator unless an admin already
// exists. Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	admin := env.Config.Admin
	if !admin.Configured() {
		env.Logger.InfoContext(ctx, "admin not configured, skipping admin setup")
		return nil
	}
	if err := password.ValidatePassword(string(admin.Password)); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	// Check admin count
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	created, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        admin.Email,
		Username:     admin.Username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hashedPassword,
		Role:         database.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin", slog.Int64("user-id", created.ID))

	return nil
}
