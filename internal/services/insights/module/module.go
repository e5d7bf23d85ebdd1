// Package module wires insights into the API using modkit
package module

import (
	"net/http"

	modkit "reparto/internal/modkit"
	"reparto/internal/modkit/httpkit"
	str "reparto/internal/platform/strings"
	catalogdom "reparto/internal/services/catalog/domain"
	insightshttp "reparto/internal/services/insights/http"
	insightsrepo "reparto/internal/services/insights/repo"
	insightssvc "reparto/internal/services/insights/service"
)

// Module implements the insights module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc insightssvc.Service
}

// Ports declares the injected catalog port this module requires
type Ports struct {
	Catalog catalogdom.ServicePort
}

// New constructs the insights module. The catalog port must be injected via
// modkit.WithPorts, and the clickhouse seam must be enabled on deps
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("insights"),
		modkit.WithPrefix("/insights"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Catalog == nil {
		panic("insights module requires the catalog port (from services/catalog)")
	}
	if deps.CH == nil {
		panic("insights module requires the clickhouse store")
	}

	svc := insightssvc.New(insightsrepo.NewCH(deps.CH), injected.Catalog)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptInsightsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		insightshttp.Register(r, m.svc)
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
