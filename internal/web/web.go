// Package web serves the embedded single-page UI.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var static embed.FS

// Handler serves the UI at /. Anything other than the root path falls through
// to a 404 so API typos don't silently return HTML.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		data, err := static.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "ui not bundled", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
	}
}
