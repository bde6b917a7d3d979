// Package filestore stores uploaded recipe images behind a backend-neutral
// key, either on a local volume or in an S3-compatible bucket.
package filestore

import (
	"context"
	"path"
	"strings"

	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/oklog/ulid/v2"
)

const (
	DefaultURLPrefix = "/media"
	imagesDir        = "images"
)

// FileStore persists images. Keys are relative, slash separated paths such
// as "recipes/images/01J….png"; they are what the database stores.
type FileStore interface {
	WriteRecipeImage(ctx context.Context, suffix, contentType string, data []byte) (key string, err error)
	Delete(ctx context.Context, key string) error
	// URL returns the absolute URL clients fetch key from.
	URL(key string) string
}

func generateKeyID() string {
	return strings.ToLower(ulid.Make().String())
}

func recipeImageKey(id, suffix string) string {
	return path.Join(fileserver.RecipesDir, imagesDir, id+suffix)
}

// extractKeyPrefix strips prefix from a URL path, leaving the key.
func extractKeyPrefix(urlpath, prefix string) string {
	key := strings.Trim(urlpath, "/")
	key = strings.TrimPrefix(key, strings.Trim(prefix, "/"))
	return strings.Trim(key, "/")
}
