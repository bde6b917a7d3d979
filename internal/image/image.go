// Package image decodes base64 data-URI image uploads.
package image

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	MaxSize         = 10 << 20 // 10 MiB decoded
	magicNumberSeek = 512
)

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrInvalidDataURI      = errors.New("invalid data uri")
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrTooLarge            = errors.New("image too large")
)

type Image struct {
	Data     []byte
	MimeType string
	Suffix   string
}

// DecodeDataURI decodes "data:image/<type>;base64,<payload>". The declared
// type is not trusted; the payload's content is sniffed instead.
func DecodeDataURI(uri string) (*Image, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, fmt.Errorf("missing data scheme: %w", ErrInvalidDataURI)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("missing payload: %w", ErrInvalidDataURI)
	}
	declared, encoding, _ := strings.Cut(header, ";")
	if !strings.HasPrefix(declared, "image/") || encoding != "base64" {
		return nil, fmt.Errorf("header %q: %w", header, ErrInvalidDataURI)
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxSize+3 {
		return nil, ErrTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("decoding payload: %w", errors.Join(ErrInvalidDataURI, err))
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload: %w", ErrInvalidDataURI)
	}
	if len(data) > MaxSize {
		return nil, ErrTooLarge
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	suffix, ok := mimeTypeSuffix[contentType]
	if !ok {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &Image{
		Data:     data,
		MimeType: contentType,
		Suffix:   suffix,
	}, nil
}
