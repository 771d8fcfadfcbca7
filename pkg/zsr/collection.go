package zsr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pagination is the page metadata of a collection response.
type Pagination struct {
	Page     int `json:"page"     yaml:"page"`
	PerPage  int `json:"perPage"  yaml:"perPage"`
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// IsLast reports whether the page is short, meaning no page follows it.
// Responses without pagination metadata are a single page.
func (p *Pagination) IsLast() bool {
	if p == nil {
		return true
	}

	return p.PageSize < p.PerPage
}

// Collection is one page of a collection response. The item array may be
// named after the resource ("events", "matches", ...) or "inner", or the
// response may be a bare array, in which case Pagination is nil.
type Collection[T any] struct {
	Inner      []T         `json:"inner"                validate:"dive" yaml:"inner"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// collectionKeys are the accepted names of the item array, in lookup order.
//
//nolint:gochecknoglobals
var collectionKeys = []string{
	"inner",
	"events",
	"matches",
	"games",
	"players",
	"teams",
	"records",
	"participants",
	"stats",
}

// Len returns the number of items.
func (c Collection[T]) Len() int {
	return len(c.Inner)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T

		err := json.Unmarshal(trimmed, &items)
		if err != nil {
			return err //nolint:wrapcheck
		}

		c.Inner = items
		c.Pagination = nil

		return nil
	}

	var fields map[string]json.RawMessage

	err := json.Unmarshal(trimmed, &fields)
	if err != nil {
		return err //nolint:wrapcheck
	}

	itemsRaw, key, ok := findItems(fields)
	if !ok {
		return fmt.Errorf("%w: expected one of %v", ErrMissingCollection, collectionKeys)
	}

	var items []T

	err = json.Unmarshal(itemsRaw, &items)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}

	if items == nil {
		items = []T{}
	}

	c.Inner = items
	c.Pagination = paginationFrom(fields)

	return nil
}

// MarshalJSON renders the flattened wire form.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	items := c.Inner
	if items == nil {
		items = []T{}
	}

	if c.Pagination == nil {
		return json.Marshal(struct { //nolint:wrapcheck
			Inner []T `json:"inner"`
		}{Inner: items})
	}

	return json.Marshal(struct { //nolint:wrapcheck
		Inner    []T `json:"inner"`
		Page     int `json:"page"`
		PerPage  int `json:"perPage"`
		PageSize int `json:"pageSize"`
	}{
		Inner:    items,
		Page:     c.Pagination.Page,
		PerPage:  c.Pagination.PerPage,
		PageSize: c.Pagination.PageSize,
	})
}

func findItems(fields map[string]json.RawMessage) (json.RawMessage, string, bool) {
	for _, key := range collectionKeys {
		raw, ok := fields[key]
		if ok {
			return raw, key, true
		}
	}

	return nil, "", false
}

// paginationFrom reads the flattened page fields. All three must be present
// integers, otherwise the response has no pagination. A null field counts as
// absent.
func paginationFrom(fields map[string]json.RawMessage) *Pagination {
	var p Pagination

	targets := map[string]*int{
		"page":     &p.Page,
		"perPage":  &p.PerPage,
		"pageSize": &p.PageSize,
	}

	for key, target := range targets {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil
		}

		err := json.Unmarshal(raw, target)
		if err != nil {
			return nil
		}
	}

	return &p
}
