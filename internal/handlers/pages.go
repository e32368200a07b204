package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/services"
)

const indexPage = "index.html"

// NewPageHandler serves the site from root. HTML pages are parsed, rendered
// in the visitor's currency and written back; other files are served as is.
func NewPageHandler(root fs.FS, svc CurrencyResolver, visitor VisitorGetter) http.HandlerFunc {
	static := http.FileServer(http.FS(root))

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" || strings.HasSuffix(r.URL.Path, "/") {
			name = path.Join(name, indexPage)
		}
		if path.Ext(name) != ".html" {
			static.ServeHTTP(w, r)
			return
		}

		visitorID, ok := visitor(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := root.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			logger.Log.Errorw("failed to open page", "page", name, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		doc, err := dom.Parse(f)
		if err != nil {
			logger.Log.Errorw("failed to parse page", "page", name, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		ctx := services.WithPageRequest(r.Context(), services.PageRequest{
			Filter:     filterFromRequest(r),
			TemplateID: r.URL.Query().Get("id"),
		})
		if _, err := svc.Resolve(ctx, doc, visitorID, clientIP(r)); err != nil {
			logger.Log.Errorw("failed to render page", "page", name, "visitor_id", visitorID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := doc.Render(w); err != nil {
			logger.Log.Errorw("failed to write page", "page", name, "error", err)
		}
	}
}
