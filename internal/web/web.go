// Package web serves the embedded signup front-end.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// IndexPath is where "/" redirects. The file server answers it with index.html.
const IndexPath = "/static/"

// RegisterRoutes mounts the static assets under /static/ and redirects the root.
func RegisterRoutes(mux *http.ServeMux) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
	})
}
