package filestore

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/matt-dz/foodgram/internal/fileserver"
)

// Local keeps images on a volume served by fileserver.Handler.
type Local struct {
	urlPathPrefix string
	host          string
	fs            *fileserver.FileServer
}

var _ FileStore = (*Local)(nil)

func NewLocal(baseDirectory, urlPathPrefix, host string) *Local {
	if urlPathPrefix == "" {
		urlPathPrefix = DefaultURLPrefix
	}
	return &Local{
		urlPathPrefix: "/" + strings.Trim(urlPathPrefix, "/"),
		host:          strings.TrimRight(host, "/"),
		fs:            fileserver.New(baseDirectory),
	}
}

func (l *Local) FileServer() *fileserver.FileServer {
	return l.fs
}

func (l *Local) URLPrefix() string {
	return l.urlPathPrefix
}

func (l *Local) WriteRecipeImage(_ context.Context, suffix, _ string, data []byte) (string, error) {
	key := recipeImageKey(generateKeyID(), suffix)
	if _, _, err := l.fs.Write(filepath.FromSlash(key), data); err != nil {
		return "", err
	}
	return key, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	return l.fs.Delete(filepath.FromSlash(extractKeyPrefix(key, l.urlPathPrefix)))
}

func (l *Local) URL(key string) string {
	if key == "" {
		return ""
	}
	return l.host + l.urlPathPrefix + "/" + strings.TrimLeft(key, "/")
}
