package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/ZacxDev/go-docsite/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	// Origin is the public base URL used for sitemap entries.
	Origin  string
	LastMod string
	Logger  zerolog.Logger
}

type SidebarResponse struct {
	Path   string                `json:"path"`
	Key    string                `json:"key"`
	Groups []config.SidebarGroup `json:"groups"`
}

// SetupRouter serves the site config to renderers. Every payload except the
// sidebar lookup is encoded once up front since the config never changes.
func SetupRouter(site *config.SiteConfig, opts Options) (*mux.Router, error) {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(Custom404Handler)
	router.Use(loggingMiddleware(opts.Logger))

	configJSON, err := site.Marshal(config.FormatJSON)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding config json")
	}

	configYAML, err := site.Marshal(config.FormatYAML)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding config yaml")
	}

	nav := site.ThemeConfig.Nav
	if nav == nil {
		nav = []config.NavItem{}
	}
	navJSON, err := json.MarshalIndent(nav, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "error encoding nav")
	}

	sitemap, err := utils.GenerateSitemapContent(opts.Origin, site.Links(), opts.LastMod)
	if err != nil {
		return nil, errors.Wrap(err, "error generating sitemap")
	}

	router.HandleFunc("/config.json", staticHandler("application/json", configJSON)).Methods("GET")
	router.HandleFunc("/config.yaml", staticHandler("application/yaml", configYAML)).Methods("GET")
	router.HandleFunc("/nav.json", staticHandler("application/json", navJSON)).Methods("GET")
	router.HandleFunc("/sitemap.xml", staticHandler("application/xml", []byte(sitemap))).Methods("GET")
	router.HandleFunc("/sidebar/{page:.*}", SidebarHandler(site)).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	return router, nil
}

// SidebarHandler resolves the sidebar for the page path following /sidebar.
// Pages outside every section get an empty sidebar, not an error.
func SidebarHandler(site *config.SiteConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := config.NormalizePagePath(mux.Vars(r)["page"])

		key, groups, err := site.ThemeConfig.Sidebar.Resolve(page)
		if err != nil {
			var unresolved *config.UnresolvedPathError
			if !errors.As(err, &unresolved) {
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
				return
			}
			groups = []config.SidebarGroup{}
		}
		if groups == nil {
			groups = []config.SidebarGroup{}
		}

		writeJSON(w, http.StatusOK, SidebarResponse{Path: page, Key: key, Groups: groups})
	}
}

// GetRegisteredRoutes lists the routes without path variables, in
// registration order.
func GetRegisteredRoutes(router *mux.Router) []string {
	var routes []string
	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil // Skip routes without a path template
		}
		if strings.Contains(path, "{") {
			return nil
		}
		routes = append(routes, path)
		return nil
	})
	return routes
}

func staticHandler(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType+"; charset=utf-8")
		w.Write(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("took", time.Since(start)).
				Msg("request")
		})
	}
}
