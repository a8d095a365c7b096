package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
	}))
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotSupported)
	router.MethodNotAllowed(h.routeNotSupported)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/places", func(r chi.Router) {
			r.Get("/{placeId}", h.getPlaceByID)
			r.Get("/user/{userId}", h.getPlacesByUserID)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createPlace)
				r.Patch("/{placeId}", h.updatePlace)
				r.Delete("/{placeId}", h.deletePlace)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.With(h.auth).Delete("/{userId}", h.deleteUser)
		})
	})

	router.Get(store.ImagesURLPrefix+"*", h.serveImages())

	return router
}

// routeNotSupported answers unknown routes and unsupported methods alike,
// so callers cannot tell which paths exist.
func (h *Handler) routeNotSupported(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message: app.MsgRouteNotSupported,
		Error:   http.StatusText(http.StatusNotFound),
	}, http.StatusNotFound)
}

// serveImages serves uploaded files from the images directory. Directory
// listings are not exposed.
func (h *Handler) serveImages() http.HandlerFunc {
	files := http.StripPrefix(store.ImagesURLPrefix, http.FileServer(http.Dir(h.imagesDir)))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			h.routeNotSupported(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
