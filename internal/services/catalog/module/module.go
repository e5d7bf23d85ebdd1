// Package module wires catalog into the API using modkit
package module

import (
	"net/http"

	"context"

	modkit "reparto/internal/modkit"
	"reparto/internal/modkit/httpkit"
	"reparto/internal/modkit/repokit"
	str "reparto/internal/platform/strings"
	cataloghttp "reparto/internal/services/catalog/http"
	catalogrepo "reparto/internal/services/catalog/repo"
	catalogsvc "reparto/internal/services/catalog/service"
)

// Module implements the catalog module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc catalogsvc.Service
}

// New constructs the catalog module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("catalog"),
		modkit.WithPrefix("/catalog"),
	}, opts...)...)

	// catalog never writes; force read only on every tx it opens
	db := repokit.WithBeginHooks(deps.PG, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, "set transaction read only")
		return err
	})

	repo := catalogrepo.NewPG()
	svc := catalogsvc.New(db, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Catalog: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		cataloghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
