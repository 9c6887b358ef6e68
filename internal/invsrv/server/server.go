// Package server assembles the inventory HTTP server: router, middleware
// stack, and the unauthenticated service endpoints.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/httpx"
	commonmiddleware "github.com/switchscope/switchscope/internal/common/middleware"
	"github.com/switchscope/switchscope/internal/invsrv/apis"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
)

// requestTimeout bounds a single API request end to end.
const requestTimeout = 30 * time.Second

type InventoryServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*InventoryServer, error) {
	s := &InventoryServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

// MountHandlers installs the middleware stack and the route tree.
func (s *InventoryServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	s.Router.Use(commonmiddleware.SetTimeout(requestTimeout))
	s.Router.Use(maxBodySize(config.Config().MaxRequestBodySize))
	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   config.Config().CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	apis.Router(s.Router)
	s.Router.Get("/version", s.getVersion)
	s.Router.Get("/ready", s.getReadiness)
}

func maxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type getVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *InventoryServer) getVersion(w http.ResponseWriter, r *http.Request) {
	rsp := &getVersionRsp{
		ServerVersion: "SwitchScope Inventory Server: " + invcommon.ServerVersion,
		ApiVersion:    invcommon.ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *InventoryServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, err := db.ConnCtx(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("database connection failed during readiness check")
		httpx.SendJsonRsp(r.Context(), w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}
	defer db.DB(ctx).Close(ctx)

	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
