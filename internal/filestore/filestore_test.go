package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-dz/foodgram/internal/fileserver"
)

func newTestFileStore(t *testing.T) (*Local, string) {
	t.Helper()
	baseDir := t.TempDir()
	return NewLocal(baseDir, DefaultURLPrefix, "http://localhost:8080"), baseDir
}

func TestNewLocal(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		host       string
		wantPrefix string
		wantHost   string
	}{
		{name: "defaults", prefix: "", host: "http://localhost:8080", wantPrefix: "/media", wantHost: "http://localhost:8080"},
		{name: "trailing slashes", prefix: "files/", host: "http://localhost:8080/", wantPrefix: "/files", wantHost: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewLocal(t.TempDir(), tt.prefix, tt.host)
			if store.urlPathPrefix != tt.wantPrefix {
				t.Errorf("urlPathPrefix = %q, want %q", store.urlPathPrefix, tt.wantPrefix)
			}
			if store.host != tt.wantHost {
				t.Errorf("host = %q, want %q", store.host, tt.wantHost)
			}
			if store.fs == nil {
				t.Error("fs is nil, expected fileserver instance")
			}
		})
	}
}

func TestWriteRecipeImage(t *testing.T) {
	store, baseDir := newTestFileStore(t)
	data := []byte("test image data")

	key, err := store.WriteRecipeImage(context.Background(), ".png", "image/png", data)
	if err != nil {
		t.Fatalf("WriteRecipeImage() error = %v", err)
	}
	if !strings.HasPrefix(key, "recipes/images/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("WriteRecipeImage() key = %q, want recipes/images/<id>.png", key)
	}

	got, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("file content = %q, want %q", got, data)
	}
}

func TestURL(t *testing.T) {
	store, _ := newTestFileStore(t)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "key", key: "recipes/images/a.png", want: "http://localhost:8080/media/recipes/images/a.png"},
		{name: "leading slash", key: "/recipes/images/a.png", want: "http://localhost:8080/media/recipes/images/a.png"},
		{name: "empty", key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.URL(tt.key); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	store, baseDir := newTestFileStore(t)
	ctx := context.Background()

	key, err := store.WriteRecipeImage(ctx, ".jpg", "image/jpeg", []byte("cover"))
	if err != nil {
		t.Fatalf("WriteRecipeImage() error = %v", err)
	}
	filePath := filepath.Join(baseDir, filepath.FromSlash(key))

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filePath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file should not exist after delete")
	}

	if err := store.Delete(ctx, key); !errors.Is(err, fileserver.ErrNotExist) {
		t.Errorf("Delete() twice error = %v, want ErrNotExist", err)
	}
}

func TestDelete_OutsideRecipes(t *testing.T) {
	store, _ := newTestFileStore(t)
	if err := store.Delete(context.Background(), "../etc/passwd"); !errors.Is(err, fileserver.ErrInvalidPath) {
		t.Errorf("Delete() error = %v, want ErrInvalidPath", err)
	}
}

func TestExtractKeyPrefix(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		prefix   string
		expected string
	}{
		{name: "trim leading prefix", key: "/media/recipes/images/1.jpg", prefix: "/media", expected: "recipes/images/1.jpg"},
		{name: "key without leading slash", key: "media/recipes/images/1.jpg", prefix: "/media", expected: "recipes/images/1.jpg"},
		{name: "bare key", key: "recipes/images/1.jpg", prefix: "/media", expected: "recipes/images/1.jpg"},
		{name: "trailing slash in key", key: "/media/recipes/images/1.jpg/", prefix: "media", expected: "recipes/images/1.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractKeyPrefix(tt.key, tt.prefix); got != tt.expected {
				t.Errorf("extractKeyPrefix() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGenerateKeyID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := generateKeyID()
		if id == "" {
			t.Fatal("generateKeyID() returned empty string")
		}
		if seen[id] {
			t.Errorf("generateKeyID() produced duplicate ID: %q", id)
		}
		seen[id] = true
	}
}

func TestS3URL(t *testing.T) {
	store, err := NewS3(S3Config{Endpoint: "localhost:9000", Bucket: "media"})
	if err != nil {
		t.Fatalf("NewS3() error = %v", err)
	}
	if got, want := store.URL("recipes/images/a.png"), "http://localhost:9000/media/recipes/images/a.png"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}

	store, err = NewS3(S3Config{Endpoint: "s3.example.com", Bucket: "media", PublicURL: "https://cdn.example.com/"})
	if err != nil {
		t.Fatalf("NewS3() error = %v", err)
	}
	if got, want := store.URL("recipes/images/a.png"), "https://cdn.example.com/recipes/images/a.png"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
