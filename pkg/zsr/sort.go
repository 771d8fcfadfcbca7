package zsr

import (
	"fmt"
	"net/url"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}

	return "asc"
}

// ParseDirection accepts "asc" or "desc" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc", "":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// SortKey is implemented by the per-resource sort field enums.
type SortKey interface {
	SortKey() string
}

// Sort orders a collection by one field.
type Sort[K SortKey] struct {
	Key       K
	Direction Direction
}

// SortBy builds a sort for key in direction d.
func SortBy[K SortKey](key K, d Direction) *Sort[K] {
	return &Sort[K]{Key: key, Direction: d}
}

// String renders the wire form "key:direction".
func (s Sort[K]) String() string {
	return s.Key.SortKey() + ":" + s.Direction.String()
}

// EncodeValues lets go-querystring emit the composite wire form.
func (s *Sort[K]) EncodeValues(key string, v *url.Values) error {
	if s == nil {
		return nil
	}

	v.Set(key, s.String())

	return nil
}
