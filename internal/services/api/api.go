// Package api provides the HTTP API for the application
package api

import (
	"reparto/internal/platform/config"
	"reparto/internal/platform/logger"
	phttp "reparto/internal/platform/net/http"
	"reparto/internal/platform/store"

	"reparto/internal/modkit"
	"reparto/internal/modkit/httpkit"
	"reparto/internal/modkit/module"
	"reparto/internal/modkit/swaggerkit"

	metamod "reparto/internal/services/api/meta/module"
	catalogmod "reparto/internal/services/catalog/module"
	insightsmod "reparto/internal/services/insights/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct catalog first and extract its resolution port
	catalog := catalogmod.New(deps)
	catalogPort := module.MustPortsOf[catalogmod.Ports](catalog).Catalog

	// Insights joins the fact store through the ids catalog resolved
	insights := insightsmod.New(
		deps,
		modkit.WithPorts(insightsmod.Ports{
			Catalog: catalogPort,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		catalog,
		insights,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
