package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// local endpoints
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		if h.appInfo != nil {
			r.Get("/sw/version", h.getVersion)
		}
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics)
		}
		if h.receiver != nil {
			r.Post(pushRoute, h.receivePush)
		}
	})

	// everything else goes through the caching interceptor
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withETag)
		r.HandleFunc(APIPrefix, h.proxyAPI)
		r.HandleFunc(APIPrefix+"/*", h.proxyAPI)
		r.HandleFunc("/*", h.proxyShell)
	})

	router.MethodNotAllowed(methodNotFound)

	return router
}
