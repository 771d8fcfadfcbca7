package zsr

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// Names of the page parameters added by Page.
const (
	ParamPage    = "page"
	ParamPerPage = "perPage"
)

type param struct {
	key   string
	value string
}

// QueryParams is an ordered list of query parameters. Keys may repeat only
// through Push; Set and Extend never duplicate a key.
type QueryParams struct {
	pairs []param
}

// NewQueryParams creates an empty parameter list.
func NewQueryParams() *QueryParams {
	return &QueryParams{pairs: make([]param, 0)}
}

// ParamsFrom encodes the `url` tagged fields of v. Fields tagged omitempty
// that are nil or zero are left out. Keys come out sorted.
func ParamsFrom(v any) (*QueryParams, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParamEncoding, err)
	}

	return FromValues(values), nil
}

// FromValues copies url.Values in sorted key order.
func FromValues(values url.Values) *QueryParams {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	params := NewQueryParams()

	for _, key := range keys {
		for _, value := range values[key] {
			params.Push(key, value)
		}
	}

	return params
}

// Push appends a pair without checking for an existing key.
func (p *QueryParams) Push(key, value string) *QueryParams {
	p.pairs = append(p.pairs, param{key: key, value: value})

	return p
}

// Set replaces the value of key in place, or appends it when absent.
// Later duplicates of key are dropped.
func (p *QueryParams) Set(key, value string) *QueryParams {
	found := false
	kept := p.pairs[:0]

	for _, pair := range p.pairs {
		if pair.key != key {
			kept = append(kept, pair)

			continue
		}

		if !found {
			kept = append(kept, param{key: key, value: value})
			found = true
		}
	}

	p.pairs = kept

	if !found {
		p.pairs = append(p.pairs, param{key: key, value: value})
	}

	return p
}

// SetInt is Set with a decimal value.
func (p *QueryParams) SetInt(key string, value int) *QueryParams {
	return p.Set(key, strconv.Itoa(value))
}

// Get returns the first value of key.
func (p *QueryParams) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	for _, pair := range p.pairs {
		if pair.key == key {
			return pair.value, true
		}
	}

	return "", false
}

// Has reports whether key is present.
func (p *QueryParams) Has(key string) bool {
	_, ok := p.Get(key)

	return ok
}

// Len returns the number of pairs.
func (p *QueryParams) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// Keys returns the keys in order, including repeats.
func (p *QueryParams) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, 0, len(p.pairs))
	for _, pair := range p.pairs {
		keys = append(keys, pair.key)
	}

	return keys
}

// Extend appends the pairs of other whose keys p does not hold yet.
// Existing keys keep their value and position.
func (p *QueryParams) Extend(other *QueryParams) *QueryParams {
	if other == nil {
		return p
	}

	for _, pair := range other.pairs {
		if p.Has(pair.key) {
			continue
		}

		p.Push(pair.key, pair.value)
	}

	return p
}

// Clone returns an independent copy.
func (p *QueryParams) Clone() *QueryParams {
	clone := NewQueryParams()
	if p == nil {
		return clone
	}

	clone.pairs = append(clone.pairs, p.pairs...)

	return clone
}

// Values converts the list to url.Values. Ordering is lost.
func (p *QueryParams) Values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	for _, pair := range p.pairs {
		values.Add(pair.key, pair.value)
	}

	return values
}

// Encode renders the pairs as a query string in list order.
func (p *QueryParams) Encode() string {
	if p == nil {
		return ""
	}

	var builder strings.Builder

	for i, pair := range p.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String()
}

// ApplyTo appends the pairs to the query of u.
func (p *QueryParams) ApplyTo(u *url.URL) {
	encoded := p.Encode()
	if encoded == "" {
		return
	}

	if u.RawQuery == "" {
		u.RawQuery = encoded

		return
	}

	u.RawQuery = u.RawQuery + "&" + encoded
}
