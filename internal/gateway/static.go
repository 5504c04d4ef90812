package gateway

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
)

const entryPage = "index.html"

// registerStaticRoutes must run last, the asset handler matches every
// remaining GET
func registerStaticRoutes(router *mux.Router, h *handlers) {
	rag := router.NewRoute().Subrouter()
	rag.Use(noCache, h.getRouteAuther(redirectToEntry))
	rag.HandleFunc("/rag", h.handleRag).Methods(http.MethodGet)

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(h.staticDir))).Methods(http.MethodGet, http.MethodHead)
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func (h *handlers) handleRag(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, entryPage))
}
