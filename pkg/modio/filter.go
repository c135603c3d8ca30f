package modio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/umisama/go-regexpcache"

	"github.com/modio/go-modio/pkg/request"
)

// nameIDPattern matches a valid resource "name_id" (the URL slug).
const nameIDPattern = `^[a-z0-9][a-z0-9_-]*$`

// ListOption configures filtering, sorting and pagination of a list request.
// See https://docs.mod.io/#filtering
type ListOption func(c *listConfig)

type listConfig struct {
	params map[string]string
}

func newListConfig(opts []ListOption) listConfig {
	c := listConfig{params: make(map[string]string)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// apply adds the collected query parameters to the request.
func (c listConfig) apply(req request.HTTPRequest) request.HTTPRequest {
	for k, v := range c.params {
		req = req.AndQueryParam(k, v)
	}
	return req
}

// WithLimit sets the maximum number of results per page, the API caps it at 100.
func WithLimit(limit int) ListOption {
	return func(c *listConfig) {
		c.params["_limit"] = strconv.Itoa(limit)
	}
}

// WithOffset skips the given number of results.
func WithOffset(offset int) ListOption {
	return func(c *listConfig) {
		c.params["_offset"] = strconv.Itoa(offset)
	}
}

// WithSort sorts results by the column, ascending.
func WithSort(column string) ListOption {
	return func(c *listConfig) {
		c.params["_sort"] = column
	}
}

// WithSortDesc sorts results by the column, descending.
func WithSortDesc(column string) ListOption {
	return func(c *listConfig) {
		c.params["_sort"] = "-" + column
	}
}

// WithQuery adds a full-text search over the searchable columns.
func WithQuery(q string) ListOption {
	return func(c *listConfig) {
		c.params["_q"] = q
	}
}

// FilterEq keeps only results whose column equals the value.
func FilterEq(column string, value any) ListOption {
	return func(c *listConfig) {
		c.params[column] = toFilterValue(value)
	}
}

// FilterNot drops results whose column equals the value.
func FilterNot(column string, value any) ListOption {
	return func(c *listConfig) {
		c.params[column+"-not"] = toFilterValue(value)
	}
}

// FilterLike keeps results whose column matches the value, "*" is a wildcard.
func FilterLike(column string, value string) ListOption {
	return func(c *listConfig) {
		c.params[column+"-lk"] = value
	}
}

// FilterIn keeps results whose column equals one of the values.
func FilterIn(column string, values ...any) ListOption {
	return func(c *listConfig) {
		items := make([]string, len(values))
		for i, v := range values {
			items[i] = toFilterValue(v)
		}
		c.params[column+"-in"] = strings.Join(items, ",")
	}
}

// FilterMin keeps results whose column is greater than or equal to the value.
func FilterMin(column string, value any) ListOption {
	return func(c *listConfig) {
		c.params[column+"-min"] = toFilterValue(value)
	}
}

// FilterMax keeps results whose column is less than or equal to the value.
func FilterMax(column string, value any) ListOption {
	return func(c *listConfig) {
		c.params[column+"-max"] = toFilterValue(value)
	}
}

// FilterBitwiseAnd keeps results whose column has all bits of the value set.
func FilterBitwiseAnd(column string, value int) ListOption {
	return func(c *listConfig) {
		c.params[column+"-bitwise-and"] = strconv.Itoa(value)
	}
}

func toFilterValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// validateNameID checks the resource URL slug before it is sent to the API.
func validateNameID(nameID string) error {
	if nameID == "" {
		return nil
	}
	if !regexpcache.MustCompile(nameIDPattern).MatchString(nameID) {
		return fmt.Errorf(`name_id "%s" is not valid: only lowercase letters, numbers, "-" and "_" are allowed`, nameID)
	}
	return nil
}
