package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robotcarousel/internal/app"
	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/pkg/config"
)

func NewHTTPServer(
	cfg *config.Config,
	posts *app.Registry[domain.Post],
	places *app.Registry[domain.Place],
) *http.Server {
	return &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(posts, places),
	}
}

// NewRouter wires the carousel and places components under /carousel and /places.
func NewRouter(posts *app.Registry[domain.Post], places *app.Registry[domain.Place]) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "OK"); err != nil {
			// Log error but don't fail health check
			slog.Warn("Failed to write health response", "error", err)
		}
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/", http.RedirectHandler("/carousel", http.StatusFound)).Methods("GET")

	newComponent("/carousel", "carousel_view", "Robot Carousel", posts, postsPage).register(r)
	newComponent("/places", "places_view", "Nearby Restaurants", places, placesPage).register(r)

	return r
}
