package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dailydoses/humor-backend/internal/config"
	"github.com/dailydoses/humor-backend/internal/transport/middleware"
)

// submissionRatePerMin caps anonymous submission writes per client IP.
const submissionRatePerMin = 10

// Deps carries everything the router needs to assemble handlers.
type Deps struct {
	Logger      *slog.Logger
	Humors      humorService
	Bundles     bundleService
	Submissions submissionService
	AppState    appStateService
	DB          dbPinger
	Version     string
	CORS        config.CORSConfig
	StaticDir   string
	MaxUploadMB int64
}

// NewRouter builds the HTTP handler tree: health probes, the content API,
// static file serving for uploaded images, and the middleware chain.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	health := NewHealthHandler(d.DB, d.Version)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	humors := NewHumorHandler(d.Humors, d.Logger)
	mux.HandleFunc("GET /humors", humors.List)
	mux.HandleFunc("POST /humors", humors.Add)
	mux.HandleFunc("PUT /humors", humors.Update)

	bundles := NewBundleHandler(d.Bundles, d.Logger, d.MaxUploadMB)
	mux.HandleFunc("GET /bundles", bundles.List)
	mux.HandleFunc("POST /bundles", bundles.Add)
	mux.HandleFunc("PUT /bundles", bundles.Update)
	mux.HandleFunc("POST /bundles/cover", bundles.UploadCover)
	mux.HandleFunc("DELETE /bundles/cover", bundles.RemoveCover)
	mux.HandleFunc("POST /bundles/thumbnail", bundles.UploadThumbnail)
	mux.HandleFunc("GET /bundles/{uuid}", bundles.Get)
	mux.HandleFunc("GET /bundles/{uuid}/preview", bundles.Preview)
	mux.HandleFunc("GET /bundles/{uuid}/humors", bundles.Download)
	mux.HandleFunc("GET /bundle-sets", bundles.ListSets)
	mux.HandleFunc("GET /bundle-sets/{uuid}/bundles", bundles.ListSetBundles)

	submissions := NewSubmissionHandler(d.Submissions, d.Logger)
	limiter := middleware.NewRateLimiter(time.Minute)
	mux.Handle("POST /submissions",
		limiter.Limit(submissionRatePerMin)(http.HandlerFunc(submissions.Create)))
	mux.HandleFunc("GET /submissions", submissions.List)

	appState := NewAppStateHandler(d.AppState, d.Logger)
	mux.HandleFunc("GET /app-state", appState.Get)

	if d.StaticDir != "" {
		mux.Handle("GET /static/",
			http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)

	return chain(mux)
}
