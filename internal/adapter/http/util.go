package adapthttp

import (
	"encoding/json"
	"net/http"
	"os"
	"path"

	"fittrack/internal/apierr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

// statusFor maps a resource API failure onto a response status. Typed
// errors keep their upstream status; anything else is a bad gateway.
func statusFor(err error) int {
	if apiErr, ok := apierr.As(err); ok {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// messageFor extracts the user-facing message from a resource API failure.
func messageFor(err error) string {
	if apiErr, ok := apierr.As(err); ok {
		return apiErr.Message
	}
	return err.Error()
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// spaFromDisk serves static assets from dir and falls back to index.html
// for client-routed paths.
func spaFromDisk(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	}
}
