// Package pages holds the static route table mapping request paths to view
// names. A Table is built once at startup and is read-only afterwards, so it
// can be shared across request goroutines without locking.
package pages

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
)

var ErrDuplicatePath = errors.New("duplicate route path")

// Route binds a request path to the view that renders it
type Route struct {
	Path     string `json:"path" validate:"required,startswith=/"`
	ViewName string `json:"view_name" validate:"required"`
}

type Table struct {
	routes []Route
	index  map[string]string
}

// NewTable validates the given routes and builds an immutable table.
// Paths are matched exactly, so "/one" and "/one/" are distinct keys.
func NewTable(routes ...Route) (*Table, error) {
	v := validator.New()
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[string]string, len(routes)),
	}

	for _, r := range routes {
		if err := v.Struct(r); err != nil {
			return nil, fmt.Errorf("invalid route %q: %w", r.Path, err)
		}
		if _, exists := t.index[r.Path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		t.index[r.Path] = r.ViewName
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Default returns the table of page routes served by the application
func Default() *Table {
	t, err := NewTable(
		Route{Path: constants.OneRoute, ViewName: constants.OneView},
		Route{Path: constants.TwoRoute, ViewName: constants.TwoView},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the view name registered for path
func (t *Table) Lookup(path string) (string, bool) {
	view, ok := t.index[path]
	return view, ok
}

// Routes returns a copy of the routes in registration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func (t *Table) Len() int {
	return len(t.routes)
}
