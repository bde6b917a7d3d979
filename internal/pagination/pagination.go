// Package pagination implements page-number pagination with absolute
// next/previous links.
package pagination

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 6
	MaxLimit     = 100

	pageParam  = "page"
	limitParam = "limit"
)

var ErrInvalidPage = errors.New("Неверная страница.")

type Page struct {
	Number int32
	Limit  int32
}

// FromRequest reads page and limit from the query string. A missing or
// malformed limit falls back to DefaultLimit; limits above MaxLimit are
// clamped.
func FromRequest(r *http.Request) (Page, error) {
	query := r.URL.Query()
	p := Page{Number: 1, Limit: DefaultLimit}

	if raw := query.Get(pageParam); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 1 {
			return Page{}, ErrInvalidPage
		}
		p.Number = int32(n)
	}
	if raw := query.Get(limitParam); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 32); err == nil && n > 0 {
			p.Limit = int32(min(n, MaxLimit))
		}
	}
	// The offset is passed to the database as int32.
	if (int64(p.Number)-1)*int64(p.Limit) > math.MaxInt32 {
		return Page{}, ErrInvalidPage
	}
	return p, nil
}

// Offset is the number of rows before the page. Pages built by FromRequest
// never overflow.
func (p Page) Offset() int32 {
	return int32((int64(p.Number) - 1) * int64(p.Limit))
}

type Response[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewResponse wraps one page of results. Links point at the same URL as r
// with the page parameter moved.
func NewResponse[T any](r *http.Request, p Page, count int64, results []T) Response[T] {
	if results == nil {
		results = []T{}
	}
	resp := Response[T]{Count: count, Results: results}

	if int64(p.Offset())+int64(p.Limit) < count && p.Number < math.MaxInt32 {
		next := pageURL(r, p.Number+1)
		resp.Next = &next
	}
	if p.Number > 1 {
		prev := pageURL(r, min(p.Number-1, lastPage(count, p.Limit)))
		resp.Previous = &prev
	}
	return resp
}

func lastPage(count int64, limit int32) int32 {
	if count == 0 {
		return 1
	}
	return int32(min((count+int64(limit)-1)/int64(limit), math.MaxInt32))
}

func pageURL(r *http.Request, page int32) string {
	u := url.URL{
		Scheme: scheme(r),
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	query := r.URL.Query()
	if page <= 1 {
		query.Del(pageParam)
	} else {
		query.Set(pageParam, strconv.FormatInt(int64(page), 10))
	}
	u.RawQuery = query.Encode()
	return u.String()
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
