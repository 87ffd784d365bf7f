package handlers

import (
	"io/fs"
	"net/http"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/web"
)

// IndexHandler serves the embedded HTML page.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, web.FS, "index.html")
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err) // static/ is embedded at build time
	}
	return http.StripPrefix("/static/", http.FileServerFS(static))
}
