package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/invsrv/auth"
	"github.com/switchscope/switchscope/internal/invsrv/db"
)

// routeParam declares one API route and its authorization tier. Every route
// requires an authenticated caller; RequireAdmin marks the mutating tier.
type routeParam struct {
	Method       string
	Path         string
	Handler      httpx.RequestHandler
	RequireAdmin bool
}

var routeHandlers = []routeParam{
	// Catalog tables. {catalogKind} is one of the registered kinds; reads
	// accept a UUID or a code in the id position.
	{Method: http.MethodGet, Path: "/catalogs/{catalogKind}", Handler: listCatalogEntries},
	{Method: http.MethodGet, Path: "/catalogs/{catalogKind}/{id}", Handler: getCatalogEntry},
	{Method: http.MethodPost, Path: "/catalogs/{catalogKind}", Handler: createCatalogEntry, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/catalogs/{catalogKind}/{id}", Handler: updateCatalogEntry, RequireAdmin: true},
	{Method: http.MethodDelete, Path: "/catalogs/{catalogKind}/{id}", Handler: deleteCatalogEntry, RequireAdmin: true},

	// Components
	{Method: http.MethodGet, Path: "/components", Handler: listComponents},
	{Method: http.MethodGet, Path: "/components/{id}", Handler: getComponent},
	{Method: http.MethodGet, Path: "/components/{id}/children", Handler: listComponentChildren},
	{Method: http.MethodGet, Path: "/components/{id}/path", Handler: getComponentPath},
	{Method: http.MethodPost, Path: "/components", Handler: createComponent, RequireAdmin: true},
	{Method: http.MethodPost, Path: "/components/{id}/children", Handler: createChildComponent, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/components/{id}", Handler: updateComponent, RequireAdmin: true},
	{Method: http.MethodPost, Path: "/components/{id}/status", Handler: changeComponentStatus, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/components/{id}/credential", Handler: setComponentCredential, RequireAdmin: true},
	{Method: http.MethodDelete, Path: "/components/{id}", Handler: deleteComponent, RequireAdmin: true},

	// Racks
	{Method: http.MethodGet, Path: "/racks/{id}/first-available-position", Handler: firstAvailableRackPosition},

	// Ports
	{Method: http.MethodGet, Path: "/components/{id}/ports", Handler: listComponentPorts},
	{Method: http.MethodGet, Path: "/ports/{id}", Handler: getPort},
	{Method: http.MethodPost, Path: "/components/{id}/ports", Handler: createPort, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/ports/{id}", Handler: updatePort, RequireAdmin: true},
	{Method: http.MethodDelete, Path: "/ports/{id}", Handler: deletePort, RequireAdmin: true},

	// Installations
	{Method: http.MethodGet, Path: "/installations", Handler: listInstallations},
	{Method: http.MethodGet, Path: "/installations/{id}", Handler: getInstallation},
	{Method: http.MethodPost, Path: "/installations", Handler: createInstallation, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/installations/{id}", Handler: updateInstallation, RequireAdmin: true},
	{Method: http.MethodPost, Path: "/installations/{id}/status", Handler: changeInstallationStatus, RequireAdmin: true},
	{Method: http.MethodPost, Path: "/installations/sweep", Handler: runAutoTransitionSweep, RequireAdmin: true},
	{Method: http.MethodDelete, Path: "/installations/{id}", Handler: deleteInstallation, RequireAdmin: true},

	// Locations
	{Method: http.MethodGet, Path: "/locations", Handler: listLocations},
	{Method: http.MethodGet, Path: "/locations/{id}", Handler: getLocation},
	{Method: http.MethodGet, Path: "/locations/{id}/path", Handler: getLocationPath},
	{Method: http.MethodPost, Path: "/locations", Handler: createLocation, RequireAdmin: true},
	{Method: http.MethodPut, Path: "/locations/{id}", Handler: updateLocation, RequireAdmin: true},
	{Method: http.MethodDelete, Path: "/locations/{id}", Handler: deleteLocation, RequireAdmin: true},

	// Service status
	{Method: http.MethodGet, Path: "/status", Handler: getStatus},
}

// Router registers the API routes on the given chi router. All routes sit
// behind token validation and the per-request database connection; the admin
// tier additionally requires an admin role.
func Router(r chi.Router) chi.Router {
	r.Group(func(r chi.Router) {
		r.Use(auth.UserAuthMiddleware)
		r.Use(db.LoadDBMiddleware)
		for _, h := range routeHandlers {
			if h.RequireAdmin {
				r.With(auth.RequireAdminMiddleware).Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
				continue
			}
			r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
		}
	})
	return r
}
