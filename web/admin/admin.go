// Package admin serves the credential-gated dashboard for creating prospects
// and copying their shareable links.
package admin

import (
	"embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vitrine-ai/vitrine/internal/prospects"
	"github.com/vitrine-ai/vitrine/pkg/middleware"
	"github.com/vitrine-ai/vitrine/pkg/module"
	"github.com/vitrine-ai/vitrine/pkg/routes"
	"github.com/vitrine-ai/vitrine/pkg/web"
)

//go:embed layouts/*.html
var layoutFS embed.FS

//go:embed views/*.html
var viewFS embed.FS

//go:embed admin.css
var styleFS embed.FS

var dashboardView = web.ViewDef{Template: "dashboard.html", Title: "Vitrine Admin"}

// ProspectRow is a dashboard listing entry.
type ProspectRow struct {
	Name    string
	Created string
	Link    string
}

// DashboardData carries the listing plus the create form state, so a failed
// submission re-renders with the operator's input intact.
type DashboardData struct {
	Prospects []ProspectRow
	Name      string
	Prompt    string
	Error     string
}

type handler struct {
	templates *web.TemplateSet
	sys       prospects.System
	basePath  string
	logger    *slog.Logger
}

// NewModule creates the admin module mounted at basePath, guarded by HTTP
// Basic authentication with the configured credential.
func NewModule(basePath string, sys prospects.System, auth *middleware.AuthConfig, logger *slog.Logger) (*module.Module, error) {
	templates, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"layouts/*.html", "views", basePath,
		[]web.ViewDef{dashboardView},
	)
	if err != nil {
		return nil, err
	}

	h := &handler{
		templates: templates,
		sys:       sys,
		basePath:  basePath,
		logger:    logger.With("system", "admin"),
	}

	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.dashboard},
			{Method: "POST", Pattern: "/prospects", Handler: h.create},
			{Method: "GET", Pattern: "/admin.css", Handler: h.stylesheet},
		},
	})

	m := module.New(basePath, mux)
	m.Use(middleware.BasicAuth(auth))
	m.Use(middleware.Logger(h.logger))
	return m, nil
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, DashboardData{})
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	cmd := prospects.CreateCommand{
		Name:   r.PostFormValue("name"),
		Prompt: r.PostFormValue("prompt"),
	}

	if _, err := h.sys.Create(r.Context(), cmd); err != nil {
		status, message := createFailure(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("prospect create failed", "name", cmd.Name, "error", err)
		}
		h.render(w, r, status, DashboardData{
			Name:   cmd.Name,
			Prompt: cmd.Prompt,
			Error:  message,
		})
		return
	}

	http.Redirect(w, r, h.basePath+"/", http.StatusSeeOther)
}

func (h *handler) stylesheet(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, styleFS, "admin.css")
}

// render fills in the prospect listing and writes the dashboard page.
func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, data DashboardData) {
	listed, err := h.sys.List(r.Context())
	if err != nil {
		h.logger.Error("prospect list failed", "error", err)
		http.Error(w, "failed to load prospects", http.StatusInternalServerError)
		return
	}

	data.Prospects = make([]ProspectRow, 0, len(listed))
	for _, p := range listed {
		data.Prospects = append(data.Prospects, ProspectRow{
			Name:    p.Name,
			Created: p.CreatedAt.Format("2006-01-02 15:04"),
			Link:    "/?prospect=" + p.ID.String(),
		})
	}

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	if err := h.templates.RenderView(w, "base", dashboardView, data); err != nil {
		h.logger.Error("dashboard render failed", "error", err)
	}
}

func createFailure(err error) (int, string) {
	switch {
	case errors.Is(err, prospects.ErrNameRequired):
		return http.StatusBadRequest, "Name is required."
	case errors.Is(err, prospects.ErrPromptRequired):
		return http.StatusBadRequest, "System prompt is required."
	case errors.Is(err, prospects.ErrDuplicate):
		return http.StatusConflict, "A prospect with this name already exists."
	default:
		return http.StatusInternalServerError, "Something went wrong. Try again."
	}
}
