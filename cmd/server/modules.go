package main

import (
	"encoding/json"
	"net/http"

	"github.com/vitrine-ai/vitrine/internal/config"
	"github.com/vitrine-ai/vitrine/internal/infrastructure"
	"github.com/vitrine-ai/vitrine/internal/prospects"
	"github.com/vitrine-ai/vitrine/internal/relay"
	"github.com/vitrine-ai/vitrine/pkg/middleware"
	"github.com/vitrine-ai/vitrine/pkg/module"
	"github.com/vitrine-ai/vitrine/pkg/routes"
	"github.com/vitrine-ai/vitrine/web/admin"
	"github.com/vitrine-ai/vitrine/web/site"
)

// Modules holds the mountable surfaces of the service. Any of them may be nil
// when its configuration is incomplete; the remaining surfaces still serve.
type Modules struct {
	Chat  *module.Module
	Admin *module.Module
	Site  *site.Renderer
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	modules := &Modules{}

	if infra.Database == nil {
		infra.Logger.Warn("running degraded; only health endpoints are served")
		return modules, nil
	}

	store := prospects.New(infra.Database.Connection(), infra.Logger)

	renderer, err := site.NewRenderer(store, cfg.Chat.BasePath, infra.Logger)
	if err != nil {
		return nil, err
	}
	modules.Site = renderer

	if infra.Generator != nil && infra.Synthesizer != nil {
		modules.Chat = newChatModule(store, infra, cfg)
	} else {
		infra.Logger.Warn("chat module disabled; landing pages render without a working widget")
	}

	if cfg.Admin.Enabled() {
		adminModule, err := admin.NewModule("/admin", store, &cfg.Admin, infra.Logger)
		if err != nil {
			return nil, err
		}
		modules.Admin = adminModule
	} else {
		infra.Logger.Warn("admin credential not configured; admin module disabled")
	}

	return modules, nil
}

func newChatModule(store prospects.System, infra *infrastructure.Infrastructure, cfg *config.Config) *module.Module {
	sys := relay.New(store, infra.Generator, infra.Synthesizer, infra.Logger)
	handler := sys.Handler()

	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())

	m := module.New(cfg.Chat.BasePath, mux)
	if cfg.Chat.CORS.Enabled {
		m.Use(middleware.CORS(&cfg.Chat.CORS))
	}
	m.Use(middleware.Logger(infra.Logger))
	return m
}

func (m *Modules) Mount(router *module.Router) {
	if m.Chat != nil {
		router.Mount(m.Chat)
	}
	if m.Admin != nil {
		router.Mount(m.Admin)
	}
}

func buildRouter(infra *infrastructure.Infrastructure, modules *Modules) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	if modules.Site != nil {
		router.HandleNative("GET /{$}", modules.Site.Landing)
		router.HandleNative("GET /static/", site.Static())
	}

	return router
}
