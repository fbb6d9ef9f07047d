package emsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response wraps a single resource in the API's {"data": ...} envelope.
// It is used for single-resource responses and for to-one relations
// expanded through the include query parameter.
type Response[T any] struct {
	Data *T `json:"data" yaml:"data"`
}

// Value returns the wrapped resource. It is safe to call on a nil
// Response, which is how an absent relation is represented.
func (r *Response[T]) Value() *T {
	if r == nil {
		return nil
	}

	return r.Data
}

// Collection wraps a to-many relation.
type Collection[T any] struct {
	Data []T `json:"data" yaml:"data"`
}

// Items returns the related resources, or nil when the relation is absent.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}

	return c.Data
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Data []T      `json:"data" yaml:"data"`
	Meta ListMeta `json:"meta" yaml:"meta"`
}

// ListMeta carries the pagination block of a list response.
type ListMeta struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// Pagination represents pagination information.
type Pagination struct {
	Total       int             `json:"total"        yaml:"total"`
	Count       int             `json:"count"        yaml:"count"`
	PerPage     int             `json:"per_page"     yaml:"per_page"`
	CurrentPage int             `json:"current_page" yaml:"current_page"`
	TotalPages  int             `json:"total_pages"  yaml:"total_pages"`
	Links       PaginationLinks `json:"links"        yaml:"links"`
}

// PaginationLinks holds the neighbouring page URLs. The server sends an
// empty JSON array instead of an object when there are no links.
type PaginationLinks struct {
	Previous string `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next     string `json:"next,omitempty"     yaml:"next,omitempty"`
}

// UnmarshalJSON accepts both the object form and the empty array form.
func (l *PaginationLinks) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '[' {
		*l = PaginationLinks{}

		return nil
	}

	type plain PaginationLinks

	var links plain

	err := json.Unmarshal(trimmed, &links)
	if err != nil {
		return fmt.Errorf("parsing pagination links: %w", err)
	}

	*l = PaginationLinks(links)

	return nil
}

// SearchPagination is the reduced pagination block returned by the
// free-text search endpoint. It never carries links.
type SearchPagination struct {
	Total       int `json:"total"        yaml:"total"`
	Count       int `json:"count"        yaml:"count"`
	PerPage     int `json:"per_page"     yaml:"per_page"`
	CurrentPage int `json:"current_page" yaml:"current_page"`
	TotalPages  int `json:"total_pages"  yaml:"total_pages"`
}

// SearchMeta carries the pagination block of a search response.
type SearchMeta struct {
	Pagination SearchPagination `json:"pagination" yaml:"pagination"`
}

// Document is one indexed item returned by a search. Its shape depends on
// the fields the search use case marks as to_retrieve.
type Document map[string]any

// SearchResponse is the result page of a free-text search.
type SearchResponse struct {
	Data []Document `json:"data" yaml:"data"`
	Meta SearchMeta `json:"meta" yaml:"meta"`
}
