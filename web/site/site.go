// Package site serves the public prospect landing pages and the embedded chat
// widget assets.
package site

import (
	"embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitrine-ai/vitrine/internal/prospects"
	"github.com/vitrine-ai/vitrine/pkg/web"
)

//go:embed layouts/*.html
var layoutFS embed.FS

//go:embed views/*.html
var viewFS embed.FS

//go:embed static
var staticFS embed.FS

var (
	landingView  = web.ViewDef{Template: "landing.html", Title: "Vitrine"}
	notFoundView = web.ViewDef{Template: "notfound.html", Title: "Not Found"}
)

// LandingData carries the prospect fields rendered into the landing page.
type LandingData struct {
	ID      string
	Name    string
	ChatURL string
}

// Renderer serves the landing page for a prospect link.
type Renderer struct {
	templates *web.TemplateSet
	sys       prospects.System
	chatURL   string
	logger    *slog.Logger
}

// NewRenderer parses the site templates and returns a Renderer. chatBasePath
// is the mount path of the chat module, used by the widget to post turns.
func NewRenderer(sys prospects.System, chatBasePath string, logger *slog.Logger) (*Renderer, error) {
	templates, err := web.NewTemplateSet(
		layoutFS, viewFS,
		"layouts/*.html", "views", "/",
		[]web.ViewDef{landingView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		templates: templates,
		sys:       sys,
		chatURL:   chatBasePath + "/",
		logger:    logger.With("system", "site"),
	}, nil
}

// Landing renders the landing page for the prospect named by the ?prospect=
// query parameter. Absent, malformed, or unknown identifiers all render the
// not-found page; the response never reveals which case applied.
func (s *Renderer) Landing(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("prospect")
	if raw == "" {
		s.templates.RenderError(w, "base", notFoundView, http.StatusNotFound)
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		s.templates.RenderError(w, "base", notFoundView, http.StatusNotFound)
		return
	}

	prospect, err := s.sys.Find(r.Context(), id)
	if err != nil {
		if !errors.Is(err, prospects.ErrNotFound) {
			s.logger.Error("landing lookup failed", "prospect", raw, "error", err)
		}
		s.templates.RenderError(w, "base", notFoundView, http.StatusNotFound)
		return
	}

	data := LandingData{
		ID:      prospect.ID.String(),
		Name:    prospect.Name,
		ChatURL: s.chatURL,
	}
	if err := s.templates.RenderView(w, "base", landingView, data); err != nil {
		s.logger.Error("landing render failed", "prospect", raw, "error", err)
	}
}

// Static returns a handler for the widget script, stylesheet, and other
// embedded assets under /static/.
func Static() http.HandlerFunc {
	return web.DistServer(staticFS, "static", "/static/")
}
