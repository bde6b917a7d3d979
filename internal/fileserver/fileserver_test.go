package fileserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestFileServer(t *testing.T) (*FileServer, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir), dir
}

func TestCleanPath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "image", path: "recipes/images/a.png", want: filepath.Join(base, "recipes", "images", "a.png")},
		{name: "dot segments inside base", path: "recipes/./images/../a.png", want: filepath.Join(base, "recipes", "a.png")},
		{name: "base itself", path: ".", want: base},
		{name: "absolute", path: "/etc/passwd", wantErr: true},
		{name: "parent", path: "..", wantErr: true},
		{name: "escape", path: "recipes/../../secret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanPath(base, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("cleanPath(%q) error = %v, want ErrInvalidPath", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cleanPath(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("cleanPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestTopLevelDirectory(t *testing.T) {
	tests := map[string]string{
		"recipes/images/a.png": "recipes",
		"/recipes/a.png":       "recipes",
		"a.png":                "a.png",
		"recipes/../avatars/x": "avatars",
	}
	for path, want := range tests {
		if got := topLevelDirectory(path); got != want {
			t.Errorf("topLevelDirectory(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestWrite(t *testing.T) {
	fs, dir := newTestFileServer(t)

	location, n, err := fs.Write(filepath.Join("recipes", "images", "a.png"), []byte("png"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Write() n = %d, want 3", n)
	}
	if want := filepath.Join(dir, "recipes", "images", "a.png"); location != want {
		t.Errorf("Write() location = %q, want %q", location, want)
	}
	data, err := os.ReadFile(location)
	if err != nil || string(data) != "png" {
		t.Errorf("stored data = %q, %v", data, err)
	}

	for _, path := range []string{"avatars/a.png", "recipes/../../a.png", "a.png"} {
		if _, _, err := fs.Write(path, []byte("x")); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Write(%q) error = %v, want ErrInvalidPath", path, err)
		}
	}
}

func TestDelete_PrunesEmptyDirectories(t *testing.T) {
	fs, dir := newTestFileServer(t)

	keep := filepath.Join("recipes", "images", "keep.png")
	drop := filepath.Join("recipes", "old", "drop.png")
	for _, p := range []string{keep, drop} {
		if _, _, err := fs.Write(p, []byte("x")); err != nil {
			t.Fatalf("Write(%q) error = %v", p, err)
		}
	}

	if err := fs.Delete(drop); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "recipes", "old")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty directory recipes/old not pruned: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "recipes")); err != nil {
		t.Errorf("top level directory removed: %v", err)
	}
	if ok, err := fs.Exists(keep); err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v, want true", keep, ok, err)
	}
}

func TestDelete_Errors(t *testing.T) {
	fs, _ := newTestFileServer(t)

	if err := fs.Delete(filepath.Join("recipes", "missing.png")); !errors.Is(err, ErrNotExist) {
		t.Errorf("Delete(missing) error = %v, want ErrNotExist", err)
	}
	if err := fs.Delete(filepath.Join("avatars", "a.png")); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Delete(outside recipes) error = %v, want ErrInvalidPath", err)
	}

	var nilServer *FileServer
	if err := nilServer.Delete("recipes/a.png"); err != nil {
		t.Errorf("nil Delete() error = %v, want nil", err)
	}
}

func TestHandler(t *testing.T) {
	fs, _ := newTestFileServer(t)
	if _, _, err := fs.Write(filepath.Join("recipes", "images", "a.png"), []byte("image")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	handler := fs.Handler("/media")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "file", path: "/media/recipes/images/a.png", wantStatus: http.StatusOK, wantBody: "image"},
		{name: "directory listing", path: "/media/recipes/", wantStatus: http.StatusNotFound},
		{name: "missing", path: "/media/recipes/images/b.png", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
